// Package guard memutuskan apakah sebuah sesi boleh membuka area tertentu
// berdasarkan role. Semua jalur gagal berujung redirect ke halaman login.
package guard

import (
	"context"
	"errors"

	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/session"
)

// LoginPath tujuan redirect untuk sesi yang tidak sah.
const LoginPath = "/login"

// Reason penyebab sebuah keputusan; hanya untuk logging, tidak pernah
// ditampilkan ke pengguna.
type Reason string

const (
	ReasonAllowed       Reason = "allowed"
	ReasonNoSession     Reason = "no_session"
	ReasonMalformedUser Reason = "malformed_user"
	ReasonRoleDenied    Reason = "role_denied"
	ReasonStorageError  Reason = "storage_error"
)

type Decision struct {
	Allowed  bool
	Redirect string
	Reason   Reason
	Session  *session.Session
}

// Check membaca sesi dari storage dan mencocokkan role (case-insensitive)
// dengan allowedRoles. Record user yang rusak membuat storage dikosongkan.
func Check(ctx context.Context, storage session.LocalStorage, allowedRoles []string) Decision {
	sess, err := session.NewContext(storage).Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNoSession):
		return deny(ReasonNoSession)
	case errors.Is(err, session.ErrMalformedUser):
		_ = storage.Clear(ctx)
		return deny(ReasonMalformedUser)
	default:
		return deny(ReasonStorageError)
	}

	if !RoleAllowed(sess.User.Role, allowedRoles) {
		return deny(ReasonRoleDenied)
	}
	return Decision{Allowed: true, Reason: ReasonAllowed, Session: sess}
}

// RoleAllowed true bila role termasuk allowed tanpa membedakan huruf.
func RoleAllowed(role string, allowed []string) bool {
	return models.User{Role: role}.HasRole(allowed...)
}

func deny(reason Reason) Decision {
	return Decision{Redirect: LoginPath, Reason: reason}
}

// Role set per area portal.
var (
	PatientRoles = []string{models.RolePatient}

	StaffRoles = []string{
		models.RoleAdmin,
		models.RoleDoctor,
		models.RoleNurse,
		models.RoleReceptionist,
		models.RoleLaboratory,
		models.RolePharmacy,
		models.RolePharmacist,
		models.RoleLabTech,
		models.RoleAccountant,
	}

	AdminRoles      = []string{models.RoleAdmin}
	LaboratoryRoles = []string{models.RoleAdmin, models.RoleLaboratory, models.RoleLabTech}
	PharmacyRoles   = []string{models.RoleAdmin, models.RolePharmacy, models.RolePharmacist}
	BillingRoles    = []string{models.RoleAdmin, models.RoleReceptionist, models.RoleAccountant}
)

// AnyRole gabungan staf dan pasien, dipakai untuk socket dan CLI whoami.
func AnyRole() []string {
	out := make([]string, 0, len(StaffRoles)+len(PatientRoles))
	out = append(out, StaffRoles...)
	return append(out, PatientRoles...)
}
