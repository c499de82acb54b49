// migrations встраивает SQL-миграции схемы в бинарник,
// чтобы сервис мог применить их при старте без доступа к файловой системе.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
