package sem

// Legendre evaluates P_n and its first derivative at x using the three
// term recurrence
//
//	(k+1) P_{k+1} = (2k+1) x P_k - k P_{k-1}
//	P'_{k+1} = P'_{k-1} + (2k+1) P_k
//
// Both recurrences are stable on [-1,1] including the endpoints.
func Legendre(n int, x float64) (p, dp float64) {
	if n == 0 {
		return 1, 0
	}
	var (
		pm1, dpm1 = 1.0, 0.0 // P_0, P'_0
		pk, dpk   = x, 1.0   // P_1, P'_1
	)
	for k := 1; k < n; k++ {
		fk := float64(k)
		pk1 := ((2*fk+1)*x*pk - fk*pm1) / (fk + 1)
		dpk1 := dpm1 + (2*fk+1)*pk
		pm1, dpm1 = pk, dpk
		pk, dpk = pk1, dpk1
	}
	return pk, dpk
}

// legendreD2 returns the first and second derivatives of P_n at an interior
// point |x| < 1, using the Legendre differential equation for the second
// derivative:
//
//	(1-x^2) P''_n = 2x P'_n - n(n+1) P_n
func legendreD2(n int, x float64) (dp, d2p float64) {
	p, dp := Legendre(n, x)
	fn := float64(n)
	d2p = (2*x*dp - fn*(fn+1)*p) / (1 - x*x)
	return
}
