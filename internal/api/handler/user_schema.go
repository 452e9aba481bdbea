package handler

import "github.com/gestiondocumental/document-system/internal/core/ports"

type createUserRequest struct {
	Cargo     string `json:"cargo"     validate:"required"`
	Nombres   string `json:"nombres"   validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	Clave     string `json:"clave"     validate:"required"`
}

// updateUserRequest carries a partial update; a supplied clave is re-hashed
// by the service before storage.
type updateUserRequest struct {
	Cargo     *string `json:"cargo"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Clave     *string `json:"clave"`
}

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Cargo:     req.Cargo,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Clave:     req.Clave,
	}
}

func toUserUpdate(req updateUserRequest) ports.UserUpdate {
	return ports.UserUpdate{
		Cargo:     req.Cargo,
		Nombres:   req.Nombres,
		Apellidos: req.Apellidos,
		Clave:     req.Clave,
	}
}
