package log

type Action = string

const (
	TakeBook      Action = "TakeBook"
	ReturnBook           = "ReturnBook"
	CreateData           = "CreateData"
	UpdateData           = "UpdateData"
	DeleteData           = "DeleteData"
	CreateLink           = "CreateLink"
	DeleteLink           = "DeleteLink"
	RegisterUser         = "RegisterUser"
	RelatedQuery         = "RelatedQuery"
)
