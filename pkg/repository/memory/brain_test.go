package memory_test

import (
	"testing"

	"github.com/secondbrain-app/secondbrain/pkg/repository/memory"
	"github.com/secondbrain-app/secondbrain/pkg/repository/testhelper"
)

func TestMemoryBrainRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
