package catalog

import "fmt"

// RemoteCatalogError is returned when the catalog answers with a non-2xx status
type RemoteCatalogError struct {
	Status     int
	StatusText string
}

func (e *RemoteCatalogError) Error() string {
	return fmt.Sprintf("catalog error: %d %s", e.Status, e.StatusText)
}
