package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/callbacks"
)

// История, согласования и вложения живут только вместе с задачей,
// каскад держится на хуке удаления - он должен быть виден GORM.
func TestJobCascadeHookWired(t *testing.T) {
	require.Implements(t, (*callbacks.AfterDeleteInterface)(nil), &Job{})
}
