package extract

import "fmt"

// New returns the extractor for the given profile extractor key.
func New(key string) (Extractor, error) {
	switch key {
	case "sbi-bank":
		return newSBIBank(), nil
	case "sbi-card":
		return newSBICard(), nil
	case "hdfc-bank":
		return newHDFCBank(), nil
	case "hdfc-card":
		return newHDFCCard(), nil
	case "yes-bank":
		return newYesBank(), nil
	case "yes-card":
		return newYesCard(), nil
	case "rbl-bank":
		return newRBLBank(), nil
	case "rbl-card":
		return newRBLCard(), nil
	case "indusind-card":
		return newIndusIndCard(), nil
	case "one-card":
		return newOneCard(), nil
	case "stanchart-bank":
		return newStanChartBank(), nil
	default:
		return nil, fmt.Errorf("unknown extractor key: %s", key)
	}
}

// Keys lists all known extractor keys, in no particular order.
func Keys() []string {
	return []string{
		"sbi-bank", "sbi-card",
		"hdfc-bank", "hdfc-card",
		"yes-bank", "yes-card",
		"rbl-bank", "rbl-card",
		"indusind-card", "one-card", "stanchart-bank",
	}
}
