package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/application/authsvc"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

type fakeAccounts struct {
	byEmail map[string]*entity.AuthAccount
}

func (f *fakeAccounts) Create(_ context.Context, a *entity.AuthAccount) error {
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*entity.AuthAccount, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id string) (*entity.AuthAccount, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

type fakeUsers struct {
	byAuthID map[string]*entity.User
	err      error
}

func (f *fakeUsers) Create(_ context.Context, _ *entity.User) error { return nil }

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byAuthID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByAuthUserID(_ context.Context, authUserID string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byAuthID[authUserID], nil
}

func (f *fakeUsers) ListByCompany(_ context.Context, _ string) ([]entity.User, error) {
	return nil, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, _ *entity.User) error { return nil }

type fakeCompanies struct{}

func (fakeCompanies) Create(_ context.Context, _ *entity.Company) error { return nil }

func (fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Acme", Status: "active"}, nil
}

type fakeLeadRepo struct {
	leads []entity.Lead
}

func (f *fakeLeadRepo) ListByCompany(_ context.Context, _ string) ([]entity.Lead, error) {
	return f.leads, nil
}

func (f *fakeLeadRepo) ListByOwner(_ context.Context, _, ownerID string) ([]entity.Lead, error) {
	var out []entity.Lead
	for _, l := range f.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeadRepo) Insert(_ context.Context, _ *entity.Lead) error      { return nil }
func (f *fakeLeadRepo) Update(_ context.Context, _ *entity.Lead) error      { return nil }
func (f *fakeLeadRepo) UpdateStage(_ context.Context, _, _, _ string) error { return nil }
func (f *fakeLeadRepo) Delete(_ context.Context, _, _ string) error         { return nil }

const testSecret = "secreto-de-prueba"

func buildGate(users *fakeUsers, leadRepo *fakeLeadRepo) (*Gate, *Registry, *fakeAccounts) {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	accounts := &fakeAccounts{byEmail: make(map[string]*entity.AuthAccount)}
	auth := authsvc.NewService(accounts, log)
	registry := NewRegistry()
	gate := NewGate(auth, users, fakeCompanies{}, leadRepo, registry, Config{
		JWTSecret:     testSecret,
		JWTIssuer:     "crm-api-test",
		JWTExpMinutes: 60,
		NoticeTTL:     time.Minute,
	}, log)
	return gate, registry, accounts
}

func seedAccount(accounts *fakeAccounts, id, email, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	accounts.byEmail[email] = &entity.AuthAccount{ID: id, Email: email, PasswordHash: string(hash)}
}

func activeProfile(id, authID string) *entity.User {
	return &entity.User{
		ID:         id,
		AuthUserID: authID,
		CompanyID:  "c1",
		Email:      "ana@acme.com",
		Name:       "Ana",
		Role:       entity.RoleAdmin,
		IsActive:   true,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": activeProfile("u1", "auth1")}}
	leadRepo := &fakeLeadRepo{leads: []entity.Lead{
		{ID: "l1", CompanyID: "c1", OwnerID: "u1", CreatedAt: "2026-08-29T10:00:00Z"},
	}}
	gate, registry, accounts := buildGate(users, leadRepo)
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	token, sess, err := gate.Login(context.Background(), "ana@acme.com", "secreta1")

	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.User.ID)
	assert.Equal(t, "Acme", sess.CompanyName)
	assert.True(t, sess.Capabilities.CanManageUsers, "los permisos se resuelven junto con la identidad")
	assert.Len(t, sess.Leads.Leads(), 1, "el conjunto de trabajo queda cargado al entrar")
	assert.Equal(t, 1, registry.Len())

	userID, companyID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "c1", companyID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": activeProfile("u1", "auth1")}}
	gate, registry, accounts := buildGate(users, &fakeLeadRepo{})
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	_, _, errMala := gate.Login(context.Background(), "ana@acme.com", "otra")
	_, _, errNadie := gate.Login(context.Background(), "nadie@acme.com", "secreta1")

	assert.ErrorIs(t, errMala, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNadie, domain.ErrUnauthorized, "email inexistente y contraseña errada son indistinguibles")
	assert.Zero(t, registry.Len())
}

func TestLogin_PerfilAusente(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{}}
	gate, registry, accounts := buildGate(users, &fakeLeadRepo{})
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	_, _, err := gate.Login(context.Background(), "ana@acme.com", "secreta1")

	assert.ErrorIs(t, err, domain.ErrProfileMissing)
	assert.Zero(t, registry.Len())
}

func TestLogin_CuentaInactiva(t *testing.T) {
	profile := activeProfile("u1", "auth1")
	profile.IsActive = false
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": profile}}
	gate, registry, accounts := buildGate(users, &fakeLeadRepo{})
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	_, _, err := gate.Login(context.Background(), "ana@acme.com", "secreta1")

	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
	assert.Zero(t, registry.Len())
}

func TestLogin_PoliticaRecursiva(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{}, err: domain.ErrPolicyRecursion}
	gate, registry, accounts := buildGate(users, &fakeLeadRepo{})
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	_, _, err := gate.Login(context.Background(), "ana@acme.com", "secreta1")

	assert.ErrorIs(t, err, domain.ErrPolicyRecursion, "error de configuración, nunca se reintenta aquí")
	assert.Zero(t, registry.Len())
}

func TestResume_ReconstruyeTrasReinicio(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": activeProfile("u1", "auth1")}}
	leadRepo := &fakeLeadRepo{leads: []entity.Lead{
		{ID: "l1", CompanyID: "c1", OwnerID: "u1", CreatedAt: "2026-08-29T10:00:00Z"},
	}}
	gate, registry, _ := buildGate(users, leadRepo)

	// Token válido pero registro vacío: simula un proceso recién arrancado.
	sess, err := gate.Resume(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", sess.User.ID)
	assert.Len(t, sess.Leads.Leads(), 1)
	assert.Equal(t, 1, registry.Len())

	again, err := gate.Resume(context.Background(), "u1")
	require.NoError(t, err)
	assert.Same(t, sess, again, "la segunda llamada reutiliza la sesión viva")
}

func TestResume_CuentaDesactivadaDespuesDelToken(t *testing.T) {
	profile := activeProfile("u1", "auth1")
	profile.IsActive = false
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": profile}}
	gate, _, _ := buildGate(users, &fakeLeadRepo{})

	_, err := gate.Resume(context.Background(), "u1")

	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestLogout_LiberaYEsIdempotente(t *testing.T) {
	users := &fakeUsers{byAuthID: map[string]*entity.User{"auth1": activeProfile("u1", "auth1")}}
	gate, registry, accounts := buildGate(users, &fakeLeadRepo{})
	seedAccount(accounts, "auth1", "ana@acme.com", "secreta1")

	_, _, err := gate.Login(context.Background(), "ana@acme.com", "secreta1")
	require.NoError(t, err)

	gate.Logout("u1")
	gate.Logout("u1")

	assert.Zero(t, registry.Len())
}
