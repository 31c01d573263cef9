package models

import (
	"time"
)

// Stage1Data holds the intake details captured when a job is opened: bills of
// lading, IGM references, routing and cargo facts.
type Stage1Data struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	JobID                uint       `gorm:"uniqueIndex;not null;column:job_id" json:"job_id"`
	JobNo                string     `gorm:"size:64;column:job_no" json:"job_no"`
	JobDate              *time.Time `gorm:"column:job_date" json:"job_date"`
	EdiJobNo             string     `gorm:"size:64;column:edi_job_no" json:"edi_job_no"`
	EdiDate              *time.Time `gorm:"column:edi_date" json:"edi_date"`
	Consignee            string     `gorm:"size:255" json:"consignee"`
	Shipper              string     `gorm:"size:255" json:"shipper"`
	PortOfDischarge      string     `gorm:"size:128;column:port_of_discharge" json:"port_of_discharge"`
	FinalPlaceOfDelivery string     `gorm:"size:128;column:final_place_of_delivery" json:"final_place_of_delivery"`
	PortOfLoading        string     `gorm:"size:128;column:port_of_loading" json:"port_of_loading"`
	CountryOfShipment    string     `gorm:"size:64;column:country_of_shipment" json:"country_of_shipment"`
	HblNo                string     `gorm:"size:64;column:hbl_no" json:"hbl_no"`
	HblDate              *time.Time `gorm:"column:hbl_date" json:"hbl_date"`
	MblNo                string     `gorm:"size:64;column:mbl_no" json:"mbl_no"`
	MblDate              *time.Time `gorm:"column:mbl_date" json:"mbl_date"`
	ShippingLine         string     `gorm:"size:128;column:shipping_line" json:"shipping_line"`
	Forwarder            string     `gorm:"size:128" json:"forwarder"`
	Weight               *float64   `json:"weight"`
	Packages             *int       `json:"packages"`
	InvoiceNo            string     `gorm:"size:64;column:invoice_no" json:"invoice_no"`
	InvoiceDate          *time.Time `gorm:"column:invoice_date" json:"invoice_date"`
	GatewayIgm           string     `gorm:"size:64;column:gateway_igm" json:"gateway_igm"`
	GatewayIgmDate       *time.Time `gorm:"column:gateway_igm_date" json:"gateway_igm_date"`
	LocalIgm             string     `gorm:"size:64;column:local_igm" json:"local_igm"`
	LocalIgmDate         *time.Time `gorm:"column:local_igm_date" json:"local_igm_date"`
	Commodity            string     `gorm:"size:255" json:"commodity"`
	Eta                  *time.Time `json:"eta"`
	CurrentStatus        string     `gorm:"size:255;column:current_status" json:"current_status"`
	ContainerNo          string     `gorm:"size:64;column:container_no" json:"container_no"`
	ContainerSize        string     `gorm:"size:16;column:container_size" json:"container_size"`
	DateOfArrival        *time.Time `gorm:"column:date_of_arrival" json:"date_of_arrival"`
	InvoicePlDoc         string     `gorm:"size:255;column:invoice_pl_doc" json:"invoice_pl_doc"`
	BlDoc                string     `gorm:"size:255;column:bl_doc" json:"bl_doc"`
	CooDoc               string     `gorm:"size:255;column:coo_doc" json:"coo_doc"`
	CreatedBy            *uint      `gorm:"column:created_by" json:"created_by"`
	UpdatedBy            *uint      `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (Stage1Data) TableName() string {
	return "stage1_data"
}

type Stage1Container struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	JobID         uint       `gorm:"index;not null;column:job_id" json:"job_id"`
	ContainerNo   string     `gorm:"size:64;not null;column:container_no" json:"container_no"`
	ContainerSize string     `gorm:"size:16;not null;default:20;column:container_size" json:"container_size"`
	DateOfArrival *time.Time `gorm:"column:date_of_arrival" json:"date_of_arrival"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (Stage1Container) TableName() string {
	return "stage1_containers"
}
