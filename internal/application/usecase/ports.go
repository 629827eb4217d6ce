package usecase

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TeamTxRunner ejecuta la actualización nombre-de-equipo + etiqueta-de-empresa
// como una sola transacción que cruza ambas tablas.
type TeamTxRunner interface {
	RunTeamUpdate(ctx context.Context, fn func(
		teamRepo repository.TeamRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}

// MemberTxRunner ejecuta escrituras sobre membresías de equipo dentro de una
// transacción, para que el conteo de admins activos y la escritura que protege
// no puedan intercalarse entre llamadas concurrentes.
type MemberTxRunner interface {
	RunMembers(ctx context.Context, fn func(
		memberRepo repository.TeamMemberRepository,
	) error) error
}
