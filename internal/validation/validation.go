package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors memetakan nama field (sesuai json tag) ke daftar pesan pelanggaran,
// mengikuti bentuk respons 422 yang sudah dipakai konsumen API.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Pakai nama json sebagai key error, bukan nama field struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct menjalankan aturan tag `validate` pada sebuah request struct dan
// mengubah hasilnya menjadi Errors. custom berisi pesan per "field.tag"
// (misal "nama.required"); field tanpa pesan custom memakai pesan default
// berbahasa Indonesia.
func Struct(s interface{}, custom map[string]string) Errors {
	errs := Errors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("_", "Data tidak valid")
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, found := custom[field+"."+fe.Tag()]; found {
			errs.Add(field, msg)
			continue
		}
		errs.Add(field, defaultMessage(field, fe))
	}
	return errs
}

func defaultMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Kolom %s wajib diisi", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Kolom %s maksimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("Kolom %s maksimal %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			// min=1 dipakai untuk field "sometimes required" pada update.
			if fe.Param() == "1" {
				return fmt.Sprintf("Kolom %s wajib diisi", field)
			}
			return fmt.Sprintf("Kolom %s minimal %s karakter", field, fe.Param())
		}
		return fmt.Sprintf("Kolom %s minimal %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("Kolom %s harus berupa alamat email yang valid", field)
	case "oneof":
		return fmt.Sprintf("Kolom %s harus salah satu dari: %s", field, strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "gte":
		return fmt.Sprintf("Kolom %s minimal %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("Kolom %s maksimal %s", field, fe.Param())
	default:
		return fmt.Sprintf("Kolom %s tidak valid", field)
	}
}
