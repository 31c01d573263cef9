package request

import "time"

type ContainerInput struct {
	ContainerNo   string     `json:"container_no" validate:"required"`
	ContainerSize string     `json:"container_size"`
	DateOfArrival *time.Time `json:"date_of_arrival"`
}

// CreateJob carries the job header plus the flattened stage-1 intake form.
type CreateJob struct {
	JobNo             string `json:"job_no" validate:"required"`
	NotificationEmail string `json:"notification_email" validate:"omitempty,email"`

	JobDate              *time.Time `json:"job_date"`
	EdiJobNo             string     `json:"edi_job_no"`
	EdiDate              *time.Time `json:"edi_date"`
	Consignee            string     `json:"consignee"`
	Shipper              string     `json:"shipper"`
	PortOfDischarge      string     `json:"port_of_discharge"`
	FinalPlaceOfDelivery string     `json:"final_place_of_delivery"`
	PortOfLoading        string     `json:"port_of_loading"`
	CountryOfShipment    string     `json:"country_of_shipment"`
	HblNo                string     `json:"hbl_no"`
	HblDate              *time.Time `json:"hbl_date"`
	MblNo                string     `json:"mbl_no"`
	MblDate              *time.Time `json:"mbl_date"`
	ShippingLine         string     `json:"shipping_line"`
	Forwarder            string     `json:"forwarder"`
	Weight               *float64   `json:"weight"`
	Packages             *int       `json:"packages"`
	InvoiceNo            string     `json:"invoice_no"`
	InvoiceDate          *time.Time `json:"invoice_date"`
	GatewayIgm           string     `json:"gateway_igm"`
	GatewayIgmDate       *time.Time `json:"gateway_igm_date"`
	LocalIgm             string     `json:"local_igm"`
	LocalIgmDate         *time.Time `json:"local_igm_date"`
	Commodity            string     `json:"commodity"`
	Eta                  *time.Time `json:"eta"`
	CurrentStatus        string     `json:"current_status"`
	InvoicePlDoc         string     `json:"invoice_pl_doc"`
	BlDoc                string     `json:"bl_doc"`
	CooDoc               string     `json:"coo_doc"`

	Containers []ContainerInput `json:"containers"`
}

// UpdateJob is the admin edit of the header and stage-1 form. Absent fields
// are left untouched; a non-nil Containers replaces the container set.
type UpdateJob struct {
	NotificationEmail *string `json:"notification_email,omitempty" validate:"omitempty,email"`
	Status            *string `json:"status,omitempty"`

	JobDate              *time.Time `json:"job_date,omitempty"`
	EdiJobNo             *string    `json:"edi_job_no,omitempty"`
	EdiDate              *time.Time `json:"edi_date,omitempty"`
	Consignee            *string    `json:"consignee,omitempty"`
	Shipper              *string    `json:"shipper,omitempty"`
	PortOfDischarge      *string    `json:"port_of_discharge,omitempty"`
	FinalPlaceOfDelivery *string    `json:"final_place_of_delivery,omitempty"`
	PortOfLoading        *string    `json:"port_of_loading,omitempty"`
	CountryOfShipment    *string    `json:"country_of_shipment,omitempty"`
	HblNo                *string    `json:"hbl_no,omitempty"`
	HblDate              *time.Time `json:"hbl_date,omitempty"`
	MblNo                *string    `json:"mbl_no,omitempty"`
	MblDate              *time.Time `json:"mbl_date,omitempty"`
	ShippingLine         *string    `json:"shipping_line,omitempty"`
	Forwarder            *string    `json:"forwarder,omitempty"`
	Weight               *float64   `json:"weight,omitempty"`
	Packages             *int       `json:"packages,omitempty"`
	InvoiceNo            *string    `json:"invoice_no,omitempty"`
	InvoiceDate          *time.Time `json:"invoice_date,omitempty"`
	GatewayIgm           *string    `json:"gateway_igm,omitempty"`
	GatewayIgmDate       *time.Time `json:"gateway_igm_date,omitempty"`
	LocalIgm             *string    `json:"local_igm,omitempty"`
	LocalIgmDate         *time.Time `json:"local_igm_date,omitempty"`
	Commodity            *string    `json:"commodity,omitempty"`
	Eta                  *time.Time `json:"eta,omitempty"`
	CurrentStatus        *string    `json:"current_status,omitempty"`
	InvoicePlDoc         *string    `json:"invoice_pl_doc,omitempty"`
	BlDoc                *string    `json:"bl_doc,omitempty"`
	CooDoc               *string    `json:"coo_doc,omitempty"`

	Containers []ContainerInput `json:"containers,omitempty"`
}
