package parcel

import (
	"dispatch/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		CustomerID:     p.CustomerID,
		RouteID:        p.RouteID,
		Status:         entities.ParcelStatusType(p.Status),
		WeightKg:       p.WeightKg,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{
		ID:             parcelModify.ID,
		TrackingNumber: parcelModify.TrackingNumber,
		CustomerID:     parcelModify.CustomerID,
		RouteID:        parcelModify.RouteID,
		WeightKg:       parcelModify.WeightKg,
		Description:    parcelModify.Description,
	}

	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
