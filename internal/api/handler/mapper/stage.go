package mapper

import (
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/models"
)

// PatchStage2 collects the stage-2 columns present in the request.
func PatchStage2(req request.UpdateStage2) map[string]any {
	patch := map[string]any{}
	put(patch, "hsn_code", req.HsnCode)
	put(patch, "filing_requirement", req.FilingRequirement)
	put(patch, "checklist_sent_date", req.ChecklistSentDate)
	put(patch, "approval_date", req.ApprovalDate)
	put(patch, "bill_of_entry_no", req.BillOfEntryNo)
	put(patch, "bill_of_entry_date", req.BillOfEntryDate)
	put(patch, "debit_note", req.DebitNote)
	put(patch, "debit_paid_by", req.DebitPaidBy)
	put(patch, "duty_amount", req.DutyAmount)
	put(patch, "duty_paid_by", req.DutyPaidBy)
	put(patch, "ocean_freight", req.OceanFreight)
	put(patch, "destination_charges", req.DestinationCharges)
	put(patch, "original_doct_recd_date", req.OriginalDoctRecdDate)
	put(patch, "drn_no", req.DrnNo)
	put(patch, "irn_no", req.IrnNo)
	put(patch, "documents_type", req.DocumentsType)
	put(patch, "document_1", req.Document1)
	put(patch, "document_2", req.Document2)
	put(patch, "document_3", req.Document3)
	put(patch, "document_4", req.Document4)
	put(patch, "document_5", req.Document5)
	put(patch, "document_6", req.Document6)
	put(patch, "query_upload", req.QueryUpload)
	put(patch, "reply_upload", req.ReplyUpload)
	return patch
}

// PatchStage3 collects the stage-3 columns present in the request.
func PatchStage3(req request.UpdateStage3) map[string]any {
	patch := map[string]any{}
	put(patch, "exam_date", req.ExamDate)
	put(patch, "out_of_charge", req.OutOfCharge)
	put(patch, "clearance_exps", req.ClearanceExps)
	put(patch, "stamp_duty", req.StampDuty)
	put(patch, "custodian", req.Custodian)
	put(patch, "offloading_charges", req.OffloadingCharges)
	put(patch, "transport_detention", req.TransportDetention)
	put(patch, "dispatch_info", req.DispatchInfo)
	put(patch, "ocean_freight", req.OceanFreight)
	put(patch, "edi_job_no", req.EdiJobNo)
	put(patch, "edi_date", req.EdiDate)
	put(patch, "original_doct_recd_date", req.OriginalDoctRecdDate)
	put(patch, "debit_note", req.DebitNote)
	put(patch, "debit_paid_by", req.DebitPaidBy)
	put(patch, "duty_amount", req.DutyAmount)
	put(patch, "duty_paid_by", req.DutyPaidBy)
	put(patch, "destination_charges", req.DestinationCharges)
	put(patch, "filing_requirement", req.FilingRequirement)
	put(patch, "checklist_sent_date", req.ChecklistSentDate)
	put(patch, "bill_of_entry_no", req.BillOfEntryNo)
	put(patch, "bill_of_entry_date", req.BillOfEntryDate)
	put(patch, "bill_of_entry_upload", req.BillOfEntryUpload)
	return patch
}

func ToStage3Containers(inputs []request.Stage3ContainerInput) []models.Stage3Container {
	if inputs == nil {
		return nil
	}
	containers := make([]models.Stage3Container, len(inputs))
	for i, in := range inputs {
		containers[i] = models.Stage3Container{
			ContainerNo:      in.ContainerNo,
			Size:             in.Size,
			VehicleNo:        in.VehicleNo,
			DateOfOffloading: in.DateOfOffloading,
			EmptyReturnDate:  in.EmptyReturnDate,
		}
	}
	return containers
}

// PatchStage4 collects the stage-4 columns present in the request.
func PatchStage4(req request.UpdateStage4) map[string]any {
	patch := map[string]any{}
	put(patch, "bill_no", req.BillNo)
	put(patch, "bill_date", req.BillDate)
	put(patch, "amount_taxable", req.AmountTaxable)
	put(patch, "gst_5_percent", req.Gst5Percent)
	put(patch, "gst_18_percent", req.Gst18Percent)
	put(patch, "bill_mail", req.BillMail)
	put(patch, "bill_courier", req.BillCourier)
	put(patch, "courier_date", req.CourierDate)
	put(patch, "acknowledge_date", req.AcknowledgeDate)
	put(patch, "acknowledge_name", req.AcknowledgeName)
	put(patch, "bill_copy_upload", req.BillCopyUpload)
	return patch
}
