package mapper

import (
	"freightflow/internal/api/handler/request"
	"freightflow/internal/api/models"
)

func ToShipper(req request.CreateParty) models.Shipper {
	return models.Shipper{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
}

func ToConsignee(req request.CreateParty) models.Consignee {
	return models.Consignee{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
}

func PatchParty(req request.UpdateParty) map[string]any {
	patch := map[string]any{}
	put(patch, "name", req.Name)
	put(patch, "address", req.Address)
	put(patch, "phone", req.Phone)
	put(patch, "email", req.Email)
	put(patch, "status", req.Status)
	return patch
}
