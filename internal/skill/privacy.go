package skill

// PrivacyCompliance is the fixed-shape manifest.privacyAndCompliance record.
type PrivacyCompliance struct {
	AllowsPurchases   bool
	IsExportCompliant bool
	ContainsAds       bool
	IsChildDirected   bool
	UsesPersonalInfo  bool
}

// DefaultPrivacy returns the record written by --privacy: export compliant,
// everything else false.
func DefaultPrivacy() PrivacyCompliance {
	return PrivacyCompliance{IsExportCompliant: true}
}

func (p PrivacyCompliance) fields() map[string]any {
	return map[string]any{
		"allowsPurchases":   p.AllowsPurchases,
		"isExportCompliant": p.IsExportCompliant,
		"containsAds":       p.ContainsAds,
		"isChildDirected":   p.IsChildDirected,
		"usesPersonalInfo":  p.UsesPersonalInfo,
	}
}
