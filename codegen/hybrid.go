package codegen

// Hybrid builds the intersection vendor: given several same-width
// vendors, the result's instruction table holds only names
// present in every input, each bound to the first vendor's handler that
// defines it (lowest index wins on a tie). Useful for emitting a
// lowest-common-denominator subset portable across NexFUSE-family
// targets sharing width W.
func Hybrid[W Width](vendors ...*Vendor[W]) *Vendor[W] {
	if len(vendors) == 0 {
		return NewVendor[W]("hybrid", 0)
	}

	h := NewVendor[W]("hybrid", vendors[0].MaxRegister)
	for _, v := range vendors {
		if v.MaxRegister < h.MaxRegister {
			h.MaxRegister = v.MaxRegister
		}
	}

	for name, handler := range vendors[0].Handlers {
		inAll := true
		for _, other := range vendors[1:] {
			if _, ok := other.Handlers[name]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			h.Register(name, handler)
		}
	}
	return h
}
