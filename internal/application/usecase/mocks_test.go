package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/consola-admin/internal/domain/entity"
)

type mockLookup struct{ mock.Mock }

func (m *mockLookup) FindPersonaByIdentificacion(ctx context.Context, ident string) *entity.Persona {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entity.Persona)
}

type mockEmpresaRepo struct{ mock.Mock }

func (m *mockEmpresaRepo) List(ctx context.Context) ([]entity.Empresa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Empresa), args.Error(1)
}

func (m *mockEmpresaRepo) Create(ctx context.Context, e entity.Empresa) (*entity.Empresa, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Empresa), args.Error(1)
}

func (m *mockEmpresaRepo) Update(ctx context.Context, id string, e entity.Empresa) (*entity.Empresa, error) {
	args := m.Called(ctx, id, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Empresa), args.Error(1)
}

func (m *mockEmpresaRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmpresaRepo) TipoContribuyenteCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockPuntoEmisionRepo struct{ mock.Mock }

func (m *mockPuntoEmisionRepo) List(ctx context.Context) ([]entity.PuntoEmision, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PuntoEmision), args.Error(1)
}

func (m *mockPuntoEmisionRepo) Create(ctx context.Context, p entity.PuntoEmision) (*entity.PuntoEmision, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PuntoEmision), args.Error(1)
}

func (m *mockPuntoEmisionRepo) Update(ctx context.Context, id string, p entity.PuntoEmision) (*entity.PuntoEmision, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PuntoEmision), args.Error(1)
}

func (m *mockPuntoEmisionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPuntoEmisionRepo) EmpresaCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

func (m *mockPuntoEmisionRepo) SucursalCatalog(ctx context.Context, empresaID string) ([]entity.CatalogOption, error) {
	args := m.Called(ctx, empresaID)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockTipoClienteRepo struct{ mock.Mock }

func (m *mockTipoClienteRepo) List(ctx context.Context) ([]entity.TipoCliente, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.TipoCliente), args.Error(1)
}

func (m *mockTipoClienteRepo) Create(ctx context.Context, t entity.TipoCliente) (*entity.TipoCliente, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TipoCliente), args.Error(1)
}

func (m *mockTipoClienteRepo) Update(ctx context.Context, id string, t entity.TipoCliente) (*entity.TipoCliente, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TipoCliente), args.Error(1)
}

func (m *mockTipoClienteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockClienteRepo struct{ mockLookup }

func (m *mockClienteRepo) List(ctx context.Context) ([]entity.Cliente, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Cliente), args.Error(1)
}

func (m *mockClienteRepo) Create(ctx context.Context, c entity.Cliente) (*entity.Cliente, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *mockClienteRepo) Update(ctx context.Context, id string, c entity.Cliente) (*entity.Cliente, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cliente), args.Error(1)
}

func (m *mockClienteRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockClienteRepo) TipoClienteCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockEmpleadoRepo struct{ mockLookup }

func (m *mockEmpleadoRepo) List(ctx context.Context) ([]entity.Empleado, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Empleado), args.Error(1)
}

func (m *mockEmpleadoRepo) Create(ctx context.Context, e entity.Empleado) (*entity.Empleado, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Empleado), args.Error(1)
}

func (m *mockEmpleadoRepo) Update(ctx context.Context, id string, e entity.Empleado) (*entity.Empleado, error) {
	args := m.Called(ctx, id, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Empleado), args.Error(1)
}

func (m *mockEmpleadoRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEmpleadoRepo) RolCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockUsuarioRepo struct{ mockLookup }

func (m *mockUsuarioRepo) List(ctx context.Context) ([]entity.Usuario, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Usuario), args.Error(1)
}

func (m *mockUsuarioRepo) Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *mockUsuarioRepo) Update(ctx context.Context, id string, u entity.Usuario) (*entity.Usuario, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Usuario), args.Error(1)
}

func (m *mockUsuarioRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUsuarioRepo) RolCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

func (m *mockUsuarioRepo) PersonaCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockProveedorRepo struct{ mockLookup }

func (m *mockProveedorRepo) List(ctx context.Context) ([]entity.Proveedor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Proveedor), args.Error(1)
}

func (m *mockProveedorRepo) Create(ctx context.Context, p entity.Proveedor) (*entity.Proveedor, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Proveedor), args.Error(1)
}

func (m *mockProveedorRepo) Update(ctx context.Context, id string, p entity.Proveedor) (*entity.Proveedor, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Proveedor), args.Error(1)
}

func (m *mockProveedorRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProveedorRepo) TipoContribuyenteCatalog(ctx context.Context) ([]entity.CatalogOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.CatalogOption), args.Error(1)
}

type mockPersonaRepo struct{ mockLookup }

func (m *mockPersonaRepo) List(ctx context.Context) ([]entity.Persona, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Persona), args.Error(1)
}

func (m *mockPersonaRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
