package reports

import (
	"context"

	"github.com/bartekus/devhooks/internal/reports/commithealth"
)

// fakeHistorySource is a test helper that implements HistorySource without shelling out.
type fakeHistorySource struct {
	commits []commithealth.CommitMetadata
}

func (f fakeHistorySource) Commits(context.Context) ([]commithealth.CommitMetadata, error) {
	return f.commits, nil
}
