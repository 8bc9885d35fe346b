package customer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rifasve/rifas/internal/customer"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    customer.CreateParams
		setupMock func(m *customer.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: customer.CreateParams{
				FullName: "Maria Perez",
				Phone:    "04141234567",
			},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *customer.Customer) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "NameTooShort",
			params: customer.CreateParams{
				FullName: "Ma",
				Phone:    "04141234567",
			},
			wantErr: true,
		},
		{
			name: "MissingPhone",
			params: customer.CreateParams{
				FullName: "Maria Perez",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := customer.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.True(t, strings.HasPrefix(got.Code, "CL-"))
			assert.Len(t, got.Code, 11)
			assert.Equal(t, got.Code, strings.ToUpper(got.Code))
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	existing := &customer.Customer{
		ID:       id,
		Code:     "CL-ABCD1234",
		FullName: "Maria Perez",
		Phone:    "04141234567",
	}

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().GetCustomer(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any()).Return(nil)

	svc := customer.NewService(repo)

	newPhone := "04267654321"
	got, err := svc.Update(context.Background(), id, customer.UpdateParams{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, newPhone, got.Phone)
	assert.Equal(t, "Maria Perez", got.FullName)
}

func TestService_Search_ShortQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The repository must not be hit for queries under two characters.
	repo := customer.NewMockRepository(ctrl)
	svc := customer.NewService(repo)

	got, err := svc.Search(context.Background(), " m ")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_GetByCode_Normalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		GetCustomerByCode(gomock.Any(), "CL-ABCD1234").
		Return(&customer.Customer{Code: "CL-ABCD1234"}, nil)

	svc := customer.NewService(repo)

	got, err := svc.GetByCode(context.Background(), "  cl-abcd1234 ")

	require.NoError(t, err)
	assert.Equal(t, "CL-ABCD1234", got.Code)
}
