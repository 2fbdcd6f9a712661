// Package handler defines HTTP handlers for authenticated pet operations.
// Creating a listing stamps the authenticated user as its creator; update
// and delete go through repository methods whose SQL predicates enforce
// that only the creator can mutate the listing. Handlers translate the
// repository sentinels into 403/404 responses.
package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sivaharine/pet-Adoption/internal/model"
	"github.com/sivaharine/pet-Adoption/internal/queue"
	"github.com/sivaharine/pet-Adoption/internal/repository"
	queue_publisher "github.com/sivaharine/pet-Adoption/internal/service"
)

// PetHandler bundles the repositories needed for authenticated pet
// mutations.
type PetHandler struct {
	Pets *repository.PetRepo
}

// NewPetHandler constructs a PetHandler and panics if the repository is nil.
func NewPetHandler(pets *repository.PetRepo) *PetHandler {
	if pets == nil {
		panic("nil repository passed to NewPetHandler")
	}
	return &PetHandler{Pets: pets}
}

// petReq is the JSON payload for creating or fully updating a listing.
type petReq struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Breed       string   `json:"breed"`
	Age         *uint32  `json:"age"`
	Size        string   `json:"size"`
	Gender      string   `json:"gender"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	Status      string   `json:"status"`
	HealthInfo  struct {
		Vaccinated   *bool `json:"vaccinated"`
		Neutered     *bool `json:"neutered"`
		Microchipped *bool `json:"microchipped"`
	} `json:"health_info"`
}

// validate checks the payload against the pet schema and returns a
// client-facing message for the first violation found, or "" when the
// payload is acceptable.  Enumerated fields are matched against the sets
// the database enforces.
func (req *petReq) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Breed = strings.TrimSpace(req.Breed)
	req.Location = strings.TrimSpace(req.Location)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	req.Size = strings.ToLower(strings.TrimSpace(req.Size))
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))

	switch {
	case req.Name == "":
		return "name is required"
	case !model.PetTypes[req.Type]:
		return "type must be one of dog, cat, bird, other"
	case req.Breed == "":
		return "breed is required"
	case req.Age == nil:
		return "age is required"
	case !model.PetSizes[req.Size]:
		return "size must be one of small, medium, large"
	case !model.PetGenders[req.Gender]:
		return "gender must be male or female"
	case strings.TrimSpace(req.Description) == "":
		return "description is required"
	case req.Location == "":
		return "location is required"
	}
	if req.Status == "" {
		req.Status = model.PetStatusAvailable
	} else if !model.PetStatuses[req.Status] {
		return "status must be one of available, adopted, pending"
	}
	return ""
}

// toModel builds a model.Pet from a validated request.
func (req *petReq) toModel() model.Pet {
	return model.Pet{
		Name:         req.Name,
		Type:         req.Type,
		Breed:        req.Breed,
		Age:          *req.Age,
		Size:         req.Size,
		Gender:       req.Gender,
		Description:  req.Description,
		Images:       req.Images,
		Location:     req.Location,
		Status:       req.Status,
		Vaccinated:   req.HealthInfo.Vaccinated,
		Neutered:     req.HealthInfo.Neutered,
		Microchipped: req.HealthInfo.Microchipped,
	}
}

// CreatePet handles POST /v1/pets.  The authenticated user becomes the
// listing's creator.  Returns 201 with the stored record.
func (h *PetHandler) CreatePet(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req petReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pet := req.toModel()
	pet.AddedBy = uid
	if err := h.Pets.Create(ctx, &pet); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create pet"})
	}

	// Event delivery is best effort; a broker outage must not fail the
	// request.
	if err := queue_publisher.PublishPetEvent(ctx, queue.PetEvent{
		Action:     queue.ActionPetListed,
		PetID:      pet.ID,
		Name:       pet.Name,
		Type:       pet.Type,
		UserID:     uid,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("pet-events: publish listed pet=%d failed: %v", pet.ID, err)
	}

	return c.JSON(http.StatusCreated, toPetResponse(&pet))
}

// UpdatePet handles PUT /v1/pets/:id.  The repository's conditional write
// decides ownership: 404 when the pet does not exist, 403 when it was
// added by someone else, 200 with the updated record otherwise.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req petReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pet := req.toModel()
	pet.ID = id
	err = h.Pets.Update(ctx, &pet, uid)
	if err != nil {
		switch err {
		case repository.ErrPetNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pet not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to update this pet"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, toPetResponse(&pet))
}

// DeletePet handles DELETE /v1/pets/:id.  Like UpdatePet, ownership rides
// on the DELETE statement itself.  Returns 200 with a confirmation body.
func (h *PetHandler) DeletePet(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err = h.Pets.Delete(ctx, id, uid)
	if err != nil {
		switch err {
		case repository.ErrPetNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pet not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to delete this pet"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}

	if err := queue_publisher.PublishPetEvent(ctx, queue.PetEvent{
		Action:     queue.ActionPetRemoved,
		PetID:      id,
		UserID:     uid,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("pet-events: publish removed pet=%d failed: %v", id, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "pet removed"})
}
