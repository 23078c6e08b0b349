package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrPolicyRecursion: el almacén reportó recursión infinita en una política
	// de acceso a filas (SQLSTATE 42P17). Fatal para la sesión; requiere que un
	// operador corrija la política, nunca se reintenta.
	ErrPolicyRecursion = errors.New("recursión en política de acceso (42P17)")

	// ErrProfileMissing: existe identidad autenticada pero sin fila de perfil CRM.
	ErrProfileMissing = errors.New("perfil no encontrado para la identidad")

	// ErrInactiveAccount: el perfil existe pero está desactivado.
	ErrInactiveAccount = errors.New("cuenta desactivada")
)
