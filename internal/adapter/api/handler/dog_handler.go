package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pawmatch/internal/domain/entity"
	"pawmatch/internal/usecase"
	"pawmatch/pkg/errors"
	"pawmatch/pkg/response"
)

type DogHandler struct {
	dogUseCase *usecase.DogUseCase
}

func NewDogHandler(dogUseCase *usecase.DogUseCase) *DogHandler {
	return &DogHandler{
		dogUseCase: dogUseCase,
	}
}

type locationPayload struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Address   string  `json:"address"`
}

type traitsPayload struct {
	Size         string `json:"size" validate:"omitempty,oneof=small medium large"`
	Energy       string `json:"energy" validate:"omitempty,oneof=low medium high"`
	Friendliness string `json:"friendliness" validate:"omitempty,oneof=low medium high"`
}

type medicalInfoPayload struct {
	Vaccinated  bool       `json:"vaccinated"`
	Neutered    bool       `json:"neutered"`
	LastCheckup *time.Time `json:"last_checkup"`
}

type createDogRequest struct {
	Name        string              `json:"name" validate:"required,min=2,max=50"`
	Breed       string              `json:"breed" validate:"required"`
	Age         *int                `json:"age" validate:"required,min=0,max=30"`
	Gender      string              `json:"gender" validate:"required,oneof=male female"`
	Photos      []string            `json:"photos" validate:"omitempty,max=6,dive,url"`
	Description string              `json:"description" validate:"omitempty,max=500"`
	Location    *locationPayload    `json:"location" validate:"required"`
	Traits      *traitsPayload      `json:"traits"`
	MedicalInfo *medicalInfoPayload `json:"medical_info"`
}

type updateDogRequest struct {
	Name        string              `json:"name" validate:"omitempty,min=2,max=50"`
	Breed       string              `json:"breed"`
	Age         *int                `json:"age" validate:"omitempty,min=0,max=30"`
	Gender      string              `json:"gender" validate:"omitempty,oneof=male female"`
	Photos      []string            `json:"photos" validate:"omitempty,max=6,dive,url"`
	Description *string             `json:"description" validate:"omitempty,max=500"`
	Location    *locationPayload    `json:"location"`
	Traits      *traitsPayload      `json:"traits"`
	MedicalInfo *medicalInfoPayload `json:"medical_info"`
}

func (p *traitsPayload) toEntity() *entity.Traits {
	if p == nil {
		return nil
	}
	return &entity.Traits{
		Size:         p.Size,
		Energy:       p.Energy,
		Friendliness: p.Friendliness,
	}
}

func (p *medicalInfoPayload) toEntity() *entity.MedicalInfo {
	if p == nil {
		return nil
	}
	return &entity.MedicalInfo{
		Vaccinated:  p.Vaccinated,
		Neutered:    p.Neutered,
		LastCheckup: p.LastCheckup,
	}
}

func (h *DogHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createDogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	dog, err := h.dogUseCase.Create(c.Request().Context(), uid, usecase.CreateDogInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         *req.Age,
		Gender:      req.Gender,
		Photos:      req.Photos,
		Description: req.Description,
		Location: entity.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		},
		Traits:      req.Traits.toEntity(),
		MedicalInfo: req.MedicalInfo.toEntity(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, dog)
}

func (h *DogHandler) GetByID(c echo.Context) error {
	dog, err := h.dogUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dog)
}

func (h *DogHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	dogs, err := h.dogUseCase.ListMine(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	if dogs == nil {
		dogs = []*entity.Dog{}
	}

	return response.Success(c, dogs)
}

func (h *DogHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateDogRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateDogInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Photos:      req.Photos,
		Description: req.Description,
		Traits:      req.Traits.toEntity(),
		MedicalInfo: req.MedicalInfo.toEntity(),
	}
	if req.Location != nil {
		input.Location = &entity.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		}
	}

	dog, err := h.dogUseCase.Update(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dog)
}

func (h *DogHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.dogUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Dog profile deleted successfully"})
}

func (h *DogHandler) Nearby(c echo.Context) error {
	uid := c.Get("uid").(string)

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("latitude is required", err))
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("longitude is required", err))
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("radius must be a number", err))
		}
	}

	dogs, err := h.dogUseCase.Nearby(c.Request().Context(), uid, lat, lon, radius)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dogs)
}
