package isbns

type convertQuery struct {
	To string `query:"to" json:"to,omitempty" default:"13" validate:"oneof=10 13"`
}
