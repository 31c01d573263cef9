package request

import "time"

// UpdateStage2 is a partial update: only fields present in the body are
// applied.
type UpdateStage2 struct {
	HsnCode              *string    `json:"hsn_code,omitempty"`
	FilingRequirement    *string    `json:"filing_requirement,omitempty"`
	ChecklistSentDate    *time.Time `json:"checklist_sent_date,omitempty"`
	ApprovalDate         *time.Time `json:"approval_date,omitempty"`
	BillOfEntryNo        *string    `json:"bill_of_entry_no,omitempty"`
	BillOfEntryDate      *time.Time `json:"bill_of_entry_date,omitempty"`
	DebitNote            *string    `json:"debit_note,omitempty"`
	DebitPaidBy          *string    `json:"debit_paid_by,omitempty"`
	DutyAmount           *float64   `json:"duty_amount,omitempty"`
	DutyPaidBy           *string    `json:"duty_paid_by,omitempty"`
	OceanFreight         *float64   `json:"ocean_freight,omitempty"`
	DestinationCharges   *float64   `json:"destination_charges,omitempty"`
	OriginalDoctRecdDate *time.Time `json:"original_doct_recd_date,omitempty"`
	DrnNo                *string    `json:"drn_no,omitempty"`
	IrnNo                *string    `json:"irn_no,omitempty"`
	DocumentsType        *string    `json:"documents_type,omitempty"`
	Document1            *string    `json:"document_1,omitempty"`
	Document2            *string    `json:"document_2,omitempty"`
	Document3            *string    `json:"document_3,omitempty"`
	Document4            *string    `json:"document_4,omitempty"`
	Document5            *string    `json:"document_5,omitempty"`
	Document6            *string    `json:"document_6,omitempty"`
	QueryUpload          *string    `json:"query_upload,omitempty"`
	ReplyUpload          *string    `json:"reply_upload,omitempty"`
}

type Stage3ContainerInput struct {
	ContainerNo      string     `json:"container_no"`
	Size             string     `json:"size"`
	VehicleNo        string     `json:"vehicle_no"`
	DateOfOffloading *time.Time `json:"date_of_offloading"`
	EmptyReturnDate  *time.Time `json:"empty_return_date"`
}

// UpdateStage3 carries the clearance form plus the full replacement container
// set.
type UpdateStage3 struct {
	ExamDate             *time.Time `json:"exam_date,omitempty"`
	OutOfCharge          *time.Time `json:"out_of_charge,omitempty"`
	ClearanceExps        *float64   `json:"clearance_exps,omitempty"`
	StampDuty            *float64   `json:"stamp_duty,omitempty"`
	Custodian            *string    `json:"custodian,omitempty"`
	OffloadingCharges    *float64   `json:"offloading_charges,omitempty"`
	TransportDetention   *float64   `json:"transport_detention,omitempty"`
	DispatchInfo         *string    `json:"dispatch_info,omitempty"`
	OceanFreight         *float64   `json:"ocean_freight,omitempty"`
	EdiJobNo             *string    `json:"edi_job_no,omitempty"`
	EdiDate              *time.Time `json:"edi_date,omitempty"`
	OriginalDoctRecdDate *time.Time `json:"original_doct_recd_date,omitempty"`
	DebitNote            *string    `json:"debit_note,omitempty"`
	DebitPaidBy          *string    `json:"debit_paid_by,omitempty"`
	DutyAmount           *float64   `json:"duty_amount,omitempty"`
	DutyPaidBy           *string    `json:"duty_paid_by,omitempty"`
	DestinationCharges   *float64   `json:"destination_charges,omitempty"`
	FilingRequirement    *string    `json:"filing_requirement,omitempty"`
	ChecklistSentDate    *time.Time `json:"checklist_sent_date,omitempty"`
	BillOfEntryNo        *string    `json:"bill_of_entry_no,omitempty"`
	BillOfEntryDate      *time.Time `json:"bill_of_entry_date,omitempty"`
	BillOfEntryUpload    *string    `json:"bill_of_entry_upload,omitempty"`

	Containers []Stage3ContainerInput `json:"containers,omitempty"`
}

// UpdateStage4 is the billing form; a set AcknowledgeDate completes the job.
type UpdateStage4 struct {
	BillNo          *string    `json:"bill_no,omitempty"`
	BillDate        *time.Time `json:"bill_date,omitempty"`
	AmountTaxable   *float64   `json:"amount_taxable,omitempty"`
	Gst5Percent     *float64   `json:"gst_5_percent,omitempty"`
	Gst18Percent    *float64   `json:"gst_18_percent,omitempty"`
	BillMail        *string    `json:"bill_mail,omitempty"`
	BillCourier     *string    `json:"bill_courier,omitempty"`
	CourierDate     *time.Time `json:"courier_date,omitempty"`
	AcknowledgeDate *time.Time `json:"acknowledge_date,omitempty"`
	AcknowledgeName *string    `json:"acknowledge_name,omitempty"`
	BillCopyUpload  *string    `json:"bill_copy_upload,omitempty"`
}
