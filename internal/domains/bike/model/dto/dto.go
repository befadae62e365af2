package dto

import (
	"cargobike/internal/domains/bike/model"
)

type CreateBikeRequest struct {
	ID   int64  `json:"id"   validate:"required,gt=0"`
	Size string `json:"size" validate:"required,notblank,max=20"`
	Name string `json:"name" validate:"required,notblank,max=100"`
}

func (c *CreateBikeRequest) ToModel() model.Bike {
	return model.Bike{
		ID:   c.ID,
		Size: c.Size,
		Name: c.Name,
	}
}

type BikeResponse struct {
	ID    int64  `json:"id"`
	Size  string `json:"size"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (r *BikeResponse) FromModel(model model.Bike) {
	r.ID = model.ID
	r.Size = model.Size
	r.Name = model.Name
	r.Label = model.Label()
}

type GetBikesResponse struct {
	Bikes     []BikeResponse `json:"bikes"`
	TotalData int            `json:"total_data"`
}

func (r *GetBikesResponse) FromModels(models []model.Bike) {
	r.TotalData = len(models)

	r.Bikes = make([]BikeResponse, len(models))
	for i, mod := range models {
		r.Bikes[i].FromModel(mod)
	}
}

// ToModels turns a cached listing back into models.
func (r *GetBikesResponse) ToModels() []model.Bike {
	models := make([]model.Bike, len(r.Bikes))
	for i, bike := range r.Bikes {
		models[i] = model.Bike{ID: bike.ID, Size: bike.Size, Name: bike.Name}
	}

	return models
}
