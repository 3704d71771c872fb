package hssctl

// Subscriber is a provisioned HSS subscriber record as returned by the API.
type Subscriber struct {
	IMSI       string   `json:"imsi" yaml:"imsi"`
	Ki         string   `json:"ki" yaml:"ki"`
	OPc        string   `json:"opc" yaml:"opc"`
	MSISDN     string   `json:"msisdn,omitempty" yaml:"msisdn,omitempty"`
	DefaultAPN string   `json:"default_apn" yaml:"default_apn"`
	APNs       []string `json:"apn" yaml:"apn"`
	Enabled    *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// NewSubscriber carries the fields for a subscriber create request.
type NewSubscriber struct {
	IMSI       string
	Ki         string
	OPc        string
	MSISDN     string
	DefaultAPN string
	APNs       []string
}

// Validate checks the request locally before any network call.
func (s *NewSubscriber) Validate() error {
	if err := ValidateIMSI(s.IMSI); err != nil {
		return &ValidationError{Field: "imsi", Message: err.Error()}
	}
	if err := ValidateKey(s.Ki); err != nil {
		return &ValidationError{Field: "ki", Message: err.Error()}
	}
	if err := ValidateKey(s.OPc); err != nil {
		return &ValidationError{Field: "opc", Message: err.Error()}
	}
	if s.DefaultAPN == "" {
		return &ValidationError{Field: "default_apn", Message: "required"}
	}
	return nil
}

// APN is an Access Point Name record as returned by the API.
type APN struct {
	Name                    string `json:"name" yaml:"name"`
	AMBRDownlink            int64  `json:"apn_ambr_dl" yaml:"apn_ambr_dl"`
	AMBRUplink              int64  `json:"apn_ambr_ul" yaml:"apn_ambr_ul"`
	QCI                     int    `json:"qci" yaml:"qci"`
	ARPPriority             int    `json:"arp_priority" yaml:"arp_priority"`
	PreemptionCapability    bool   `json:"arp_preemption_capability" yaml:"arp_preemption_capability"`
	PreemptionVulnerability bool   `json:"arp_preemption_vulnerability" yaml:"arp_preemption_vulnerability"`
}

// NewAPN carries the fields for an APN create request. Bandwidths are
// given as strings like "150mbit" and parsed via ParseBandwidth.
type NewAPN struct {
	Name                    string
	DownlinkBandwidth       string
	UplinkBandwidth         string
	QCI                     int
	ARPPriority             int
	PreemptionCapability    bool
	PreemptionVulnerability bool
}

// Validate checks the request locally before any network call.
func (a *NewAPN) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}
	if _, err := ParseBandwidth(a.DownlinkBandwidth); err != nil {
		return &ValidationError{Field: "dl", Message: err.Error()}
	}
	if _, err := ParseBandwidth(a.UplinkBandwidth); err != nil {
		return &ValidationError{Field: "ul", Message: err.Error()}
	}
	return nil
}

// IMSSubscriber is an IMS subscriber record as returned by the API.
// MSISDNList holds additional numbers beyond the primary MSISDN.
type IMSSubscriber struct {
	IMSI       string   `json:"imsi" yaml:"imsi"`
	MSISDN     string   `json:"msisdn" yaml:"msisdn"`
	MSISDNList []string `json:"msisdn_list" yaml:"msisdn_list"`
	PCSCF      string   `json:"pcscf,omitempty" yaml:"pcscf,omitempty"`
	SCSCF      string   `json:"scscf,omitempty" yaml:"scscf,omitempty"`
}

// NewIMSSubscriber carries the fields for an IMS subscriber create request.
// The first MSISDN is the primary; the rest become the additional list.
type NewIMSSubscriber struct {
	IMSI    string
	MSISDNs []string
}

// Validate checks the request locally before any network call.
func (s *NewIMSSubscriber) Validate() error {
	if err := ValidateIMSI(s.IMSI); err != nil {
		return &ValidationError{Field: "imsi", Message: err.Error()}
	}
	if len(s.MSISDNs) == 0 {
		return &ValidationError{Field: "msisdn", Message: "at least one MSISDN required"}
	}
	return nil
}

// Page selects a window of a list endpoint.
type Page struct {
	Size   int
	Number int
}
