package model

type Profile struct {
	UserID      string   `json:"user_id"`
	DisplayName string   `json:"display_name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Gender      *string  `json:"gender"`
	WeightKg    *float64 `json:"weight_kg"`
	HeightCm    *float64 `json:"height_cm"`
	Age         *int64   `json:"age"`
	Bio         string   `json:"bio"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateProfileRequest struct {
	DisplayName string   `json:"display_name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Gender      *string  `json:"gender"`
	WeightKg    *float64 `json:"weight_kg"`
	HeightCm    *float64 `json:"height_cm"`
	Age         *int64   `json:"age"`
	Bio         string   `json:"bio"`
}

type CreateProfileResponse Profile

type GetProfileRequest struct {
	UserID string `json:"user_id"`
}

type GetProfileResponse Profile

type GetProfilesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

type UpdateProfileRequest struct {
	UserID      string   `json:"user_id"`
	DisplayName *string  `json:"display_name"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Gender      *string  `json:"gender"`
	WeightKg    *float64 `json:"weight_kg"`
	HeightCm    *float64 `json:"height_cm"`
	Age         *int64   `json:"age"`
	Bio         *string  `json:"bio"`
}

type UpdateProfileResponse Profile

type DeleteProfileRequest struct {
	UserID string `json:"user_id"`
}

type DeleteProfileResponse struct{}
