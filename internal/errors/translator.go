package errors

import "errors"

var directory = map[string]string{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":                               "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":                          "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                                       "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER":                     "tidak dapat membuat user baru karena username mengandung karakter terlarang",
	"LOGIN_USER.NOT_CONTAIN_NEEDED_PROPERTY":                                  "harus mengirimkan username dan password",
	"LOGIN_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":                             "username dan password harus berupa string",
	"REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":               "harus mengirimkan refresh token",
	"REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": "refresh token harus berupa string",
	"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":                "harus mengirimkan refresh token",
	"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION":  "refresh token harus berupa string",
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":                                  "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":                             "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":                                 "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":                            "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":                                   "tidak dapat membuat balasan karena properti yang dibutuhkan tidak ada",
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":                              "tidak dapat membuat balasan karena tipe data tidak sesuai",
	"NEW_LIKE.NOT_CONTAIN_NEEDED_PROPERTY":                                    "tidak dapat menyukai komentar karena properti yang dibutuhkan tidak ada",
	"NEW_LIKE.NOT_MEET_DATA_TYPE_SPECIFICATION":                               "tidak dapat menyukai komentar karena tipe data tidak sesuai",
}

// Translate converts a known ValidationError into an Invariant error with a
// client readable message. Any other error is returned as is.
func Translate(err error) error {
	var v *ValidationError
	if !errors.As(err, &v) {
		return err
	}
	if msg, ok := directory[v.Error()]; ok {
		return Invariant(msg)
	}
	return err
}
