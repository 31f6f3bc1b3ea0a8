// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// doc.go — package overview.

// Package modelset loads named diffusion models from a YAML parameter document.
//
// A document lists records; each record names a model, picks its family with
// "kind" and supplies that family's parameters:
//
//	models:
//	  - name: spx
//	    kind: gbm
//	    mu: 0.05
//	    sigma: 0.2
//	  - name: short-rate
//	    kind: cir
//	    sigma: 0.1
//	    kappa: 1.0
//	    theta: 0.03
//	  - name: smile
//	    kind: lipton
//	    sigma0: 0.2
//	    sigma1: -0.01
//	    sigma2: 0.0005
//	    negative_vol: clamp
//
// Each family requires its own keys (gbm: sigma; cev: sigma, beta; ou and
// cir: sigma, kappa, theta; lipton: sigma0, sigma1, sigma2). mu is optional
// everywhere and defaults to 0; negative_vol is accepted on lipton only.
//
// Loading is all-or-nothing: a malformed field, an unknown key, a missing
// or foreign parameter, a duplicate or empty name, an unknown kind, an
// invalid parameter or a second YAML document fails the whole document, and
// the error names the offending record. A loaded Set is read-only and safe to
// share between goroutines.
package modelset
