package api

// CreateSubscriberRequest for POST /subscriber
type CreateSubscriberRequest struct {
	IMSI       string   `json:"imsi"`
	Ki         string   `json:"ki"`
	OPc        string   `json:"opc"`
	MSISDN     string   `json:"msisdn,omitempty"`
	DefaultAPN string   `json:"default_apn"`
	APNs       []string `json:"apn"`
}

// CreateAPNRequest for POST /apn
type CreateAPNRequest struct {
	Name                    string `json:"name"`
	AMBRDownlink            int64  `json:"apn_ambr_dl"`
	AMBRUplink              int64  `json:"apn_ambr_ul"`
	QCI                     int    `json:"qci"`
	ARPPriority             int    `json:"arp_priority"`
	PreemptionCapability    bool   `json:"arp_preemption_capability"`
	PreemptionVulnerability bool   `json:"arp_preemption_vulnerability"`
}

// CreateIMSSubscriberRequest for POST /ims_subscriber
type CreateIMSSubscriberRequest struct {
	IMSI       string   `json:"imsi"`
	MSISDN     string   `json:"msisdn"`
	MSISDNList []string `json:"msisdn_list"`
}

// DeleteResult is the body the API returns for delete operations.
type DeleteResult struct {
	Result string `json:"Result"`
}

// OK reports whether the API confirmed the deletion.
func (r *DeleteResult) OK() bool {
	return r.Result == "OK"
}
