package validators

import (
	"net/http"
	"testing"

	"github.com/anonto42/rede-social/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedRequests(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo"}))
	assert.NoError(t, v.Validate(&models.CreateCommentRequest{Content: "olá"}))
	assert.NoError(t, v.Validate(&models.CreatePollRequest{
		Name:    "cores",
		Content: "qual cor?",
		Options: []models.CreateOptionRequest{{Content: "red"}, {Content: "blue"}},
	}))
}

func TestValidateReportsWireFieldNames(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantRule  string
	}{
		{"missing name", &models.RegisterRequest{Email: "a@b.com", Password: "x"}, "nome", "required"},
		{"bad email", &models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "x"}, "email", "email"},
		{"missing content", &models.CreateReplyRequest{}, "conteudo", "required"},
		{"zero option id", &models.VoteRequest{}, "opcao_id", "required"},
		{"no options", &models.CreatePollRequest{Name: "p", Content: "c"}, "opcoes_list", "required"},
		{"empty option", &models.CreatePollRequest{
			Name: "p", Content: "c", Options: []models.CreateOptionRequest{{Content: ""}},
		}, "opcoes_list[0].conteudo", "required"},
		{"form username", &models.LoginFormRequest{Password: "x"}, "username", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			require.Error(t, err)

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnprocessableEntity, he.Code)

			fields, ok := he.Message.([]FieldError)
			require.True(t, ok)
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.wantField, fields[0].Field)
			assert.Equal(t, tt.wantRule, fields[0].Rule)
		})
	}
}
