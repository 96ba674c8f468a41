package model

// ExternalClient mirrors the client records served by the partner CRM.
type ExternalClient struct {
	ID    int    `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Email string `json:"email" mapstructure:"email"`
	Phone string `json:"phone" mapstructure:"phone"`
}

type GetExternalClientsRequest struct{}

type GetExternalClientsResponse struct {
	Clients []ExternalClient `json:"clients"`
}

type GetExternalClientRequest struct {
	ID int `json:"id"`
}

type GetExternalClientResponse struct {
	Client *ExternalClient `json:"client"`
}

type CreateExternalClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateExternalClientResponse struct {
	Client *ExternalClient `json:"client"`
}

type UpdateExternalClientRequest struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateExternalClientResponse struct {
	Client *ExternalClient `json:"client"`
}

type DeleteExternalClientRequest struct {
	ID int `json:"id"`
}

type DeleteExternalClientResponse struct {
	Success bool `json:"success"`
}
