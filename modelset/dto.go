// SPDX-License-Identifier: MIT
// Package: lvsde/modelset
//
// dto.go — on-disk shape of a parameter document.
//
// Parameters are pointers so the mapper can tell an absent key from an
// explicit zero; the per-kind key rules live in mapper.go.

package modelset

// yamlDocument is the on-disk shape of a parameter document.
type yamlDocument struct {
	Models []yamlModel `yaml:"models"`
}

// yamlModel is one record. A nil field was not present in the document.
type yamlModel struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	Mu     *float64 `yaml:"mu"`
	Sigma  *float64 `yaml:"sigma"`
	Beta   *float64 `yaml:"beta"`
	Kappa  *float64 `yaml:"kappa"`
	Theta  *float64 `yaml:"theta"`
	Sigma0 *float64 `yaml:"sigma0"`
	Sigma1 *float64 `yaml:"sigma1"`
	Sigma2 *float64 `yaml:"sigma2"`

	// NegativeVol is "reject", "clamp" or "pass"; empty means the default.
	NegativeVol *string `yaml:"negative_vol"`
}
