package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/consola-admin/internal/domain"
)

// requiredMessages mensaje de presencia por campo del formulario (nombre JSON).
var requiredMessages = map[string]string{
	"id":                  "El id es requerido",
	"identificacion":      "La identificacion es requerida",
	"tipoIdentificacion":  "El tipo de identificacion es requerido",
	"nombre":              "El nombre es requerido",
	"apellido":            "El apellido es requerido",
	"tipoClienteId":       "El tipo de cliente es requerido",
	"salario":             "El salario es requerido",
	"fechaIngreso":        "La fecha de ingreso es requerida",
	"rolId":               "El rol es requerido",
	"username":            "El usuario es requerido",
	"password":            "La contraseña es requerida",
	"razonSocial":         "La razón social es requerida",
	"ruc":                 "El RUC es requerido",
	"codigo":              "El código es requerido",
	"descripcion":         "La descripción es requerida",
	"secuencialActual":    "El secuencial actual es requerido",
	"empresaId":           "La empresa es requerida",
	"sucursalId":          "La sucursal es requerida",
	"descuento":           "El descuento es requerido",
	"tipoContribuyenteId": "El tipo de contribuyente es requerido",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres JSON en los errores, igual que en el formulario.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct valida las etiquetas del DTO y devuelve el primer fallo como *domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), validationMessage(fe))
}

func validationMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
		return "El campo " + fe.Field() + " es requerido"
	}
	return "El campo " + fe.Field() + " no es válido"
}

// required error de presencia para comprobaciones fuera de las etiquetas.
func required(field string) error {
	return domain.NewValidationError(field, requiredMessages[field])
}

// requireID valida el id de ruta de una edición o eliminación.
func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return required("id")
	}
	return nil
}

// auditOr devuelve el usuario de auditoría o el valor por defecto.
func auditOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// boolOr valor del puntero o def si no se informó.
func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
