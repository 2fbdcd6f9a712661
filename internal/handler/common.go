package handler // handler defines http handlers

import (
	"errors"  // errors provides the sentinel used in getUserID
	"strconv" // strconv converts strings to numeric types
	"time"    // time is used in response DTO fields

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/sivaharine/pet-Adoption/internal/model" // model holds domain records
)

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWTAuth stores the value as uint64 but the helper tolerates the other
// numeric shapes that appear when claims pass through JSON decoding.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// healthInfoPart groups the optional health flags in responses.  Nil flags
// are omitted so clients can distinguish "unknown" from "false".
type healthInfoPart struct {
	Vaccinated   *bool `json:"vaccinated,omitempty"`
	Neutered     *bool `json:"neutered,omitempty"`
	Microchipped *bool `json:"microchipped,omitempty"`
}

// addedByPart identifies the user who listed a pet.  Only name and email
// are exposed, mirroring what the marketplace shows next to a listing.
type addedByPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// petResponse is the JSON shape of a pet listing returned by every
// endpoint that serves pets.
type petResponse struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Breed       string         `json:"breed"`
	Age         uint32         `json:"age"`
	Size        string         `json:"size"`
	Gender      string         `json:"gender"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Location    string         `json:"location"`
	Status      string         `json:"status"`
	HealthInfo  healthInfoPart `json:"health_info"`
	AddedBy     addedByPart    `json:"added_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// toPetResponse maps a model.Pet onto the wire shape.
func toPetResponse(p *model.Pet) petResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Age:         p.Age,
		Size:        p.Size,
		Gender:      p.Gender,
		Description: p.Description,
		Images:      images,
		Location:    p.Location,
		Status:      p.Status,
		HealthInfo: healthInfoPart{
			Vaccinated:   p.Vaccinated,
			Neutered:     p.Neutered,
			Microchipped: p.Microchipped,
		},
		AddedBy: addedByPart{
			ID:    p.AddedBy,
			Name:  p.AddedByName,
			Email: p.AddedByEmail,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// toPetResponses maps a slice, never returning nil so empty lists encode
// as [] rather than null.
func toPetResponses(pets []*model.Pet) []petResponse {
	out := make([]petResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, toPetResponse(p))
	}
	return out
}
