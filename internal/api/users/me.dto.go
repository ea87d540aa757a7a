package users

import (
	"product-studio/internal/domain/plans"
	"product-studio/internal/domain/users"
)

type MeResponse struct {
	User UserDTO `json:"user"`
	Plan PlanDTO `json:"plan"`
}

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	IsVerified bool   `json:"is_verified"`
}

type PlanDTO struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
	// ProductLimit and RemainingSlots are nil on the paid plan (unlimited).
	ProductLimit   *int `json:"product_limit"`
	RemainingSlots *int `json:"remaining_slots"`
}

func BuildMeResponse(u users.User) MeResponse {
	resp := MeResponse{
		User: UserDTO{
			ID:         u.ID,
			Email:      u.Email,
			Name:       u.Name,
			IsVerified: u.IsVerified,
		},
		Plan: PlanDTO{
			Name:         plans.Normalize(u.Plan),
			ProductCount: u.ProductCount,
		},
	}

	if resp.Plan.Name == plans.PlanFree {
		limit := plans.FreeProductLimit
		remaining := limit - u.ProductCount
		if remaining < 0 {
			remaining = 0
		}
		resp.Plan.ProductLimit = &limit
		resp.Plan.RemainingSlots = &remaining
	}

	return resp
}
