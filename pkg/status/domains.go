package status

//go:generate go run ../../cmd/ddc-statusgen -table tables/ddcrc.yaml -output .
//go:generate go run ../../cmd/ddc-statusgen -table tables/adl.yaml -output .

// DDCDomain returns the DDC/CI protocol domain. Its table holds codes
// already in the shared space.
func DDCDomain() Domain {
	return Domain{
		ID:                 DomainDDC,
		Base:               RangeDDCBase,
		Max:                RangeDDCMax,
		Find:               TableFinder(ddcrcTable),
		FinderArgModulated: true,
		Lookup:             TableLookup(ddcrcTable),
	}
}

// ADLDomain returns the vendor display API domain. Without the adl build
// tag the range is still reserved but its table is empty.
func ADLDomain() Domain {
	return Domain{
		ID:     DomainADL,
		Base:   RangeADLBase,
		Max:    RangeADLMax,
		Find:   TableFinder(adlTable),
		Lookup: TableLookup(adlTable),
	}
}

// ADLUnavailable returns the code every vendor API operation reports when
// ADL support is not compiled in.
func ADLUnavailable(op string) *Error {
	return &Error{Code: DDCUnimplemented, Op: op}
}

// IsDerived reports whether c is set by a caller after examining primary
// codes, rather than observed on the wire.
func IsDerived(c Code) bool {
	switch c {
	case DDCAllTriesZero, DDCRetries, DDCDeterminedUnsupported:
		return true
	}
	return false
}

// IsNotError reports whether c describes a state rather than a failure.
// A monitor reporting a feature unsupported answered correctly.
func IsNotError(c Code) bool {
	return c == DDCReportedUnsupported
}
