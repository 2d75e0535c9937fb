package thermo

// nasaBranch selects the coefficient range and evaluation temperature of a NASA7 record.
// Outside [minT, maxT] the boundary range is evaluated at the clamped temperature and
// frozen reports true.
func (r *record) nasaBranch(t float64) (a []float64, tEval float64, frozen bool) {
	switch {
	case t < r.minT:
		return r.c[8:14], r.minT, true
	case t > r.maxT:
		return r.c[1:7], r.maxT, true
	case t <= r.c[0]:
		return r.c[8:14], t, false
	default:
		return r.c[1:7], t, false
	}
}

func cpPoly(a []float64, t float64) float64 {
	return a[0] + t*(2.*a[1]+t*(6.*a[2]+t*(12.*a[3]+20.*t*a[4])))
}

func dcpPoly(a []float64, t float64) float64 {
	return 2.*a[1] + t*(12.*a[2]+t*(36.*a[3]+80.*t*a[4]))
}

func hPoly(a []float64, t float64) float64 {
	return a[5] + t*(a[0]+t*(a[1]+t*(2.*a[2]+t*(3.*a[3]+4.*t*a[4]))))
}

// cp is the mass specific heat capacity.
func (r *record) cp(t float64) float64 {
	switch r.polyType {
	case Constant:
		return r.invMW * r.c[3]
	case NASA7:
		a, tEval, _ := r.nasaBranch(t)
		return r.invMW * cpPoly(a, tEval)
	}
	return 0
}

// dcpdT is zero for constant closures and wherever cp is frozen.
func (r *record) dcpdT(t float64) float64 {
	if r.polyType != NASA7 {
		return 0
	}
	a, tEval, frozen := r.nasaBranch(t)
	if frozen {
		return 0
	}
	return r.invMW * dcpPoly(a, tEval)
}

// enthalpy is the mass specific enthalpy. Outside [minT, maxT] it continues linearly
// from the boundary with the frozen cp, so value and slope are continuous there.
func (r *record) enthalpy(t float64) float64 {
	switch r.polyType {
	case Constant:
		return r.invMW * (r.c[1] + r.c[3]*(t-r.c[0]))
	case NASA7:
		a, tb, frozen := r.nasaBranch(t)
		if frozen {
			return r.invMW * (hPoly(a, tb) + cpPoly(a, tb)*(t-tb))
		}
		return r.invMW * hPoly(a, t)
	}
	return 0
}
