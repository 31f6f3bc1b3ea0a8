// SPDX-License-Identifier: MIT
package diffusion_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsde/diffusion"
)

// ExampleNewGBM evaluates GBM coefficients at S=100.
func ExampleNewGBM() {
	m, err := diffusion.NewGBM(0.05, 0.2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	vol, _ := m.Volatility(100, 0)
	fmt.Printf("drift=%.2f vol=%.2f\n", m.Drift(100, 0), vol)
	// Output:
	// drift=5.00 vol=20.00
}

// ExampleNewCIR shows the domain error for a negative short rate.
func ExampleNewCIR() {
	m, err := diffusion.NewCIR(0, 0.1, 1.0, 0.03)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	vol, _ := m.Volatility(0.04, 0)
	fmt.Printf("vol(0.04)=%.3f feller=%v\n", vol, m.Feller())

	_, err = m.Volatility(-1, 0)
	fmt.Println(errors.Is(err, diffusion.ErrDomain), err)
	// Output:
	// vol(0.04)=0.020 feller=true
	// true diffusion: cir: state S=-1 out of domain (S must be >= 0)
}

// ExampleNew drives every family through the common Model contract.
func ExampleNew() {
	records := []diffusion.Params{
		{Kind: diffusion.KindGBM, Mu: 0.05, Sigma: 0.2},
		{Kind: diffusion.KindCEV, Mu: 0.05, Sigma: 0.2, Beta: 0.5},
		{Kind: diffusion.KindOU, Sigma: 0.1, Kappa: 2.0, Theta: 0.03},
		{Kind: diffusion.KindLipton, Mu: 0.01, Sigma0: 0.2, Sigma1: 0.01, Sigma2: 0.001},
		{Kind: diffusion.KindCIR, Sigma: 0.1, Kappa: 1.0, Theta: 0.03},
	}
	for _, p := range records {
		m, err := diffusion.New(p)
		if err != nil {
			fmt.Println("error:", err)

			continue
		}
		vol, _ := m.Volatility(1, 0)
		fmt.Printf("%-6s drift(1)=%+.4f vol(1)=%.4f\n", m.Kind(), m.Drift(1, 0), vol)
	}
	// Output:
	// gbm    drift(1)=+0.0500 vol(1)=0.2000
	// cev    drift(1)=+0.0500 vol(1)=0.2000
	// ou     drift(1)=-1.9400 vol(1)=0.1000
	// lipton drift(1)=+0.0100 vol(1)=0.2110
	// cir    drift(1)=-0.9700 vol(1)=0.1000
}

// ExampleWithNegativeVolPolicy clamps a dipping Lipton smile at zero.
func ExampleWithNegativeVolPolicy() {
	m, _ := diffusion.NewLipton(0, 0.2, -0.1, 0.01,
		diffusion.WithNegativeVolPolicy(diffusion.ClampNegative))
	s, v := m.MinVolatility()
	vol, _ := m.Volatility(s, 0)
	fmt.Printf("min at S=%.1f raw=%.2f clamped=%.2f\n", s, v, vol)
	// Output:
	// min at S=5.0 raw=-0.05 clamped=0.00
}

// ExampleNewGBM_invalid shows a rejected constructor argument.
func ExampleNewGBM_invalid() {
	_, err := diffusion.NewGBM(0.05, -0.1)
	fmt.Println(errors.Is(err, diffusion.ErrInvalidParameter), err)
	// Output:
	// true diffusion: gbm: invalid parameter sigma=-0.1 (must be > 0)
}
