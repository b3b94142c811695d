package blueprint

import "github.com/satellite-games/new-horizons-database/modules/kit/errx"

type Code = errx.Code

const (
	CodePartial       Code = "BLUEPRINT_PARTIAL"
	CodeUnknownField  Code = "BLUEPRINT_UNKNOWN_FIELD"
	CodeDecode        Code = "BLUEPRINT_DECODE"
	CodeDuplicateName Code = "BLUEPRINT_DUPLICATE_NAME"
	CodeShapeMismatch Code = "BLUEPRINT_SHAPE_MISMATCH"
	CodeNotFound      Code = "BLUEPRINT_NOT_FOUND"
)

type Error = errx.Error

var (
	ErrPartial       = errx.NewBiz(CodePartial, "blueprint record is missing fields")
	ErrUnknownField  = errx.NewBiz(CodeUnknownField, "blueprint record has unknown fields")
	ErrDecode        = errx.NewBiz(CodeDecode, "blueprint record cannot be decoded")
	ErrDuplicateName = errx.NewBiz(CodeDuplicateName, "blueprint name already registered")
	ErrShapeMismatch = errx.NewBiz(CodeShapeMismatch, "blueprint type does not match its entity")
	ErrNotFound      = errx.NewBiz(CodeNotFound, "blueprint not found")
)
