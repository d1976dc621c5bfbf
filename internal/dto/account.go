package dto

import "github.com/yukikurage/portfolio-api/internal/models"

// AccountDTO is the public projection of an account: the password hash
// never leaves the service.
type AccountDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToAccountDTO converts an Account model to AccountDTO.
func ToAccountDTO(account models.Account) AccountDTO {
	return AccountDTO{
		ID:   account.ID,
		Name: account.Name,
	}
}
