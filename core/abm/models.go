package abm

import "time"

// Device is an immutable snapshot of one organization device as reported by
// Apple Business Manager. Created once per fetch, never mutated.
type Device struct {
	// SerialNumber is the natural key shared with the MDM.
	SerialNumber string
	// AddedToOrg is when the device entered the organization. Zero when ABM
	// returned no parseable timestamp.
	AddedToOrg time.Time
	// OrderNumber is the purchase order number, when present.
	OrderNumber string
	// PurchaseSourceType describes how the device was acquired.
	PurchaseSourceType string
	// PurchaseSourceID is the opaque vendor token.
	PurchaseSourceID string
	// Model is the device model, display only.
	Model string
}

// orgDevicesResponse mirrors the JSON:API shaped payload of GET /orgDevices.
type orgDevicesResponse struct {
	Data  []orgDevice `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
	Meta struct {
		Cursor string `json:"cursor"`
	} `json:"meta"`
	Cursor string `json:"cursor"`
}

type orgDevice struct {
	Attributes deviceAttributes `json:"attributes"`
}

type deviceAttributes struct {
	SerialNumber       string `json:"serialNumber"`
	AddedToOrgDateTime string `json:"addedToOrgDateTime"`
	OrderNumber        string `json:"orderNumber"`
	PurchaseSourceType string `json:"purchaseSourceType"`
	PurchaseSourceID   string `json:"purchaseSourceId"`
	DeviceModel        string `json:"deviceModel"`
}

// toDevice converts the wire representation into the immutable snapshot.
func (a deviceAttributes) toDevice() Device {
	d := Device{
		SerialNumber:       a.SerialNumber,
		OrderNumber:        a.OrderNumber,
		PurchaseSourceType: a.PurchaseSourceType,
		PurchaseSourceID:   a.PurchaseSourceID,
		Model:              a.DeviceModel,
	}
	if a.AddedToOrgDateTime != "" {
		if ts, err := time.Parse(time.RFC3339, a.AddedToOrgDateTime); err == nil {
			d.AddedToOrg = ts
		}
	}
	return d
}
