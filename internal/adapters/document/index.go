package document

import (
	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

// BuildIndex flattens the document's path table into one entry per defined
// (operation type, path) pair. Paths follow document order; operation types
// follow domain.OperationTypes.
func BuildIndex(doc *Document) ([]domain.EndpointSummary, error) {
	if err := doc.check(); err != nil {
		return nil, err
	}

	var index []domain.EndpointSummary

	for _, path := range doc.PathKeys() {
		item := doc.PathItem(path)
		if item == nil {
			continue
		}

		for _, op := range domain.OperationTypes {
			if item.GetOperation(string(op)) == nil {
				continue
			}

			index = append(index, domain.EndpointSummary{
				OperationType: op,
				Path:          path,
			})
		}
	}

	return index, nil
}
