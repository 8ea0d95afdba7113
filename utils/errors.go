package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

// HandleValidationErrors turns a ctx.ReadJSON failure into a 400 with field
// detail when it is a validator error, or a generic 500 otherwise.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		wrapped := make([]validationError, 0, len(errs))
		for _, fieldErr := range errs {
			wrapped = append(wrapped, validationError{
				ActualTag: fieldErr.ActualTag(),
				Namespace: fieldErr.Namespace(),
				Kind:      fieldErr.Kind().String(),
				Type:      fieldErr.Type().String(),
				Value:     fieldErr.Param(),
				Param:     fieldErr.Param(),
			})
		}
		ctx.StopWithProblem(iris.StatusBadRequest,
			iris.NewProblem().Title("Validation error").
				Detail("One or more fields failed to be validated").
				Key("errors", wrapped))
		return
	}

	ctx.StopWithProblem(iris.StatusBadRequest,
		iris.NewProblem().Title("Bad request").Detail(err.Error()))
}

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithProblem(statusCode, iris.NewProblem().Title(title).Detail(detail))
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred.",
		ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

func CreateForbidden(ctx iris.Context) {
	CreateError(iris.StatusForbidden, "Forbidden", "You do not own this resource.", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Email already registered.", ctx)
}
