package mapper

import (
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/handler/response"
	"freightflow/internal/api/models"
)

// CreateJob splits the flat intake request into the job header, the stage-1
// record and its container rows.
func CreateJob(req request.CreateJob) (models.Job, models.Stage1Data, []models.Stage1Container) {
	job := models.Job{
		JobNo:             req.JobNo,
		NotificationEmail: req.NotificationEmail,
	}

	stage1 := models.Stage1Data{
		JobDate:              req.JobDate,
		EdiJobNo:             req.EdiJobNo,
		EdiDate:              req.EdiDate,
		Consignee:            req.Consignee,
		Shipper:              req.Shipper,
		PortOfDischarge:      req.PortOfDischarge,
		FinalPlaceOfDelivery: req.FinalPlaceOfDelivery,
		PortOfLoading:        req.PortOfLoading,
		CountryOfShipment:    req.CountryOfShipment,
		HblNo:                req.HblNo,
		HblDate:              req.HblDate,
		MblNo:                req.MblNo,
		MblDate:              req.MblDate,
		ShippingLine:         req.ShippingLine,
		Forwarder:            req.Forwarder,
		Weight:               req.Weight,
		Packages:             req.Packages,
		InvoiceNo:            req.InvoiceNo,
		InvoiceDate:          req.InvoiceDate,
		GatewayIgm:           req.GatewayIgm,
		GatewayIgmDate:       req.GatewayIgmDate,
		LocalIgm:             req.LocalIgm,
		LocalIgmDate:         req.LocalIgmDate,
		Commodity:            req.Commodity,
		Eta:                  req.Eta,
		CurrentStatus:        req.CurrentStatus,
		InvoicePlDoc:         req.InvoicePlDoc,
		BlDoc:                req.BlDoc,
		CooDoc:               req.CooDoc,
	}

	return job, stage1, ToStage1Containers(req.Containers)
}

func ToStage1Containers(inputs []request.ContainerInput) []models.Stage1Container {
	containers := make([]models.Stage1Container, len(inputs))
	for i, in := range inputs {
		containers[i] = models.Stage1Container{
			ContainerNo:   in.ContainerNo,
			ContainerSize: in.ContainerSize,
			DateOfArrival: in.DateOfArrival,
		}
	}
	return containers
}

// PatchJob collects the job-header columns present in the request.
func PatchJob(req request.UpdateJob) map[string]any {
	patch := map[string]any{}
	put(patch, "notification_email", req.NotificationEmail)
	put(patch, "status", req.Status)
	return patch
}

// PatchStage1 collects the stage-1 columns present in the request.
func PatchStage1(req request.UpdateJob) map[string]any {
	patch := map[string]any{}
	put(patch, "job_date", req.JobDate)
	put(patch, "edi_job_no", req.EdiJobNo)
	put(patch, "edi_date", req.EdiDate)
	put(patch, "consignee", req.Consignee)
	put(patch, "shipper", req.Shipper)
	put(patch, "port_of_discharge", req.PortOfDischarge)
	put(patch, "final_place_of_delivery", req.FinalPlaceOfDelivery)
	put(patch, "port_of_loading", req.PortOfLoading)
	put(patch, "country_of_shipment", req.CountryOfShipment)
	put(patch, "hbl_no", req.HblNo)
	put(patch, "hbl_date", req.HblDate)
	put(patch, "mbl_no", req.MblNo)
	put(patch, "mbl_date", req.MblDate)
	put(patch, "shipping_line", req.ShippingLine)
	put(patch, "forwarder", req.Forwarder)
	put(patch, "weight", req.Weight)
	put(patch, "packages", req.Packages)
	put(patch, "invoice_no", req.InvoiceNo)
	put(patch, "invoice_date", req.InvoiceDate)
	put(patch, "gateway_igm", req.GatewayIgm)
	put(patch, "gateway_igm_date", req.GatewayIgmDate)
	put(patch, "local_igm", req.LocalIgm)
	put(patch, "local_igm_date", req.LocalIgmDate)
	put(patch, "commodity", req.Commodity)
	put(patch, "eta", req.Eta)
	put(patch, "current_status", req.CurrentStatus)
	put(patch, "invoice_pl_doc", req.InvoicePlDoc)
	put(patch, "bl_doc", req.BlDoc)
	put(patch, "coo_doc", req.CooDoc)
	return patch
}

func ToJobResponse(j models.Job) response.Job {
	resp := response.Job{
		ID:                j.ID,
		JobNo:             j.JobNo,
		CurrentStage:      j.CurrentStage,
		CurrentStageLabel: j.CurrentStage.Label(),
		Status:            j.Status,
		CreatedBy:         j.CreatedBy,
		NotificationEmail: j.NotificationEmail,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
	if j.Stage1 != nil {
		resp.Consignee = j.Stage1.Consignee
		resp.Shipper = j.Stage1.Shipper
	}
	return resp
}

func ToJobResponses(jobs []models.Job) []response.Job {
	out := make([]response.Job, len(jobs))
	for i, j := range jobs {
		out[i] = ToJobResponse(j)
	}
	return out
}

// put adds a patch entry only when the request field was present.
func put[T any](patch map[string]any, column string, v *T) {
	if v != nil {
		patch[column] = *v
	}
}
