package hssctl

import (
	"context"
	"errors"
	"net/http"
)

// ProvisioningAPI abstracts HTTP communication with the pyHSS provisioning
// service. Implementations must be safe for concurrent use.
// The canonical implementation lives in internal/api.
type ProvisioningAPI interface {
	// ListSubscribers retrieves a page of subscriber records.
	ListSubscribers(ctx context.Context, page Page) ([]Subscriber, error)

	// GetSubscriber retrieves a single subscriber by IMSI.
	GetSubscriber(ctx context.Context, imsi string) (*Subscriber, error)

	// CreateSubscriber provisions a new subscriber.
	CreateSubscriber(ctx context.Context, sub Subscriber) (*Subscriber, error)

	// DeleteSubscriber removes a subscriber by IMSI.
	DeleteSubscriber(ctx context.Context, imsi string) error

	// ListAPNs retrieves all APN records.
	ListAPNs(ctx context.Context) ([]APN, error)

	// CreateAPN provisions a new APN.
	CreateAPN(ctx context.Context, apn APN) (*APN, error)

	// DeleteAPN removes an APN by name.
	DeleteAPN(ctx context.Context, name string) error

	// ListIMSSubscribers retrieves a page of IMS subscriber records.
	ListIMSSubscribers(ctx context.Context, page Page) ([]IMSSubscriber, error)

	// CreateIMSSubscriber provisions a new IMS subscriber.
	CreateIMSSubscriber(ctx context.Context, sub IMSSubscriber) (*IMSSubscriber, error)

	// DeleteIMSSubscriber removes an IMS subscriber by IMSI.
	DeleteIMSSubscriber(ctx context.Context, imsi string) error
}

// Client is the main interface for provisioning subscribers and APNs.
// It validates requests locally before handing them to the API and maps
// 404 responses to the package sentinel errors.
type Client struct {
	api    ProvisioningAPI
	config Config
}

// New creates a new provisioning client on top of a ProvisioningAPI.
func New(cfg Config, apiClient ProvisioningAPI) (*Client, error) {
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		api:    apiClient,
		config: cfg,
	}, nil
}

// Config returns the resolved configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// ListSubscribers returns a page of subscribers.
func (c *Client) ListSubscribers(ctx context.Context, page Page) ([]Subscriber, error) {
	return c.api.ListSubscribers(ctx, page)
}

// GetSubscriber returns a single subscriber by IMSI.
// Returns ErrSubscriberNotFound if the API has no record for the IMSI.
func (c *Client) GetSubscriber(ctx context.Context, imsi string) (*Subscriber, error) {
	if err := ValidateIMSI(imsi); err != nil {
		return nil, &ValidationError{Field: "imsi", Message: err.Error()}
	}

	sub, err := c.api.GetSubscriber(ctx, imsi)
	if isNotFound(err) {
		return nil, ErrSubscriberNotFound
	}
	return sub, err
}

// AddSubscriber provisions a new subscriber.
func (c *Client) AddSubscriber(ctx context.Context, req NewSubscriber) (*Subscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	apns := req.APNs
	if apns == nil {
		apns = []string{}
	}

	return c.api.CreateSubscriber(ctx, Subscriber{
		IMSI:       req.IMSI,
		Ki:         req.Ki,
		OPc:        req.OPc,
		MSISDN:     req.MSISDN,
		DefaultAPN: req.DefaultAPN,
		APNs:       apns,
	})
}

// RemoveSubscriber deletes a subscriber by IMSI.
// Returns ErrSubscriberNotFound if the API has no record for the IMSI.
func (c *Client) RemoveSubscriber(ctx context.Context, imsi string) error {
	if err := ValidateIMSI(imsi); err != nil {
		return &ValidationError{Field: "imsi", Message: err.Error()}
	}

	err := c.api.DeleteSubscriber(ctx, imsi)
	if isNotFound(err) {
		return ErrSubscriberNotFound
	}
	return err
}

// ListAPNs returns all APNs.
func (c *Client) ListAPNs(ctx context.Context) ([]APN, error) {
	return c.api.ListAPNs(ctx)
}

// GetAPN returns a single APN by name.
// Returns ErrAPNNotFound if no APN with that name exists.
func (c *Client) GetAPN(ctx context.Context, name string) (*APN, error) {
	apns, err := c.api.ListAPNs(ctx)
	if err != nil {
		return nil, err
	}

	for i := range apns {
		if apns[i].Name == name {
			return &apns[i], nil
		}
	}
	return nil, ErrAPNNotFound
}

// AddAPN provisions a new APN.
func (c *Client) AddAPN(ctx context.Context, req NewAPN) (*APN, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	downlink, err := ParseBandwidth(req.DownlinkBandwidth)
	if err != nil {
		return nil, &ValidationError{Field: "dl", Message: err.Error()}
	}
	uplink, err := ParseBandwidth(req.UplinkBandwidth)
	if err != nil {
		return nil, &ValidationError{Field: "ul", Message: err.Error()}
	}

	return c.api.CreateAPN(ctx, APN{
		Name:                    req.Name,
		AMBRDownlink:            downlink,
		AMBRUplink:              uplink,
		QCI:                     req.QCI,
		ARPPriority:             req.ARPPriority,
		PreemptionCapability:    req.PreemptionCapability,
		PreemptionVulnerability: req.PreemptionVulnerability,
	})
}

// RemoveAPN deletes an APN by name.
// Returns ErrAPNNotFound if no APN with that name exists.
func (c *Client) RemoveAPN(ctx context.Context, name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}

	err := c.api.DeleteAPN(ctx, name)
	if isNotFound(err) {
		return ErrAPNNotFound
	}
	return err
}

// ListIMSSubscribers returns a page of IMS subscribers.
func (c *Client) ListIMSSubscribers(ctx context.Context, page Page) ([]IMSSubscriber, error) {
	return c.api.ListIMSSubscribers(ctx, page)
}

// AddIMSSubscriber provisions a new IMS subscriber.
// The first MSISDN becomes the primary; the rest go into the additional list.
func (c *Client) AddIMSSubscriber(ctx context.Context, req NewIMSSubscriber) (*IMSSubscriber, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return c.api.CreateIMSSubscriber(ctx, IMSSubscriber{
		IMSI:       req.IMSI,
		MSISDN:     req.MSISDNs[0],
		MSISDNList: req.MSISDNs[1:],
	})
}

// RemoveIMSSubscriber deletes an IMS subscriber by IMSI.
// Returns ErrIMSSubscriberNotFound if the API has no record for the IMSI.
func (c *Client) RemoveIMSSubscriber(ctx context.Context, imsi string) error {
	if err := ValidateIMSI(imsi); err != nil {
		return &ValidationError{Field: "imsi", Message: err.Error()}
	}

	err := c.api.DeleteIMSSubscriber(ctx, imsi)
	if isNotFound(err) {
		return ErrIMSSubscriberNotFound
	}
	return err
}

// isNotFound reports whether err is a RemoteError with a 404 status.
func isNotFound(err error) bool {
	var remote *RemoteError
	return errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound
}
