//go:build integration && azurite

package skiptesting

import (
	"context"
	"strings"

	"github.com/datatrails/go-datatrails-common/azblob"
)

// NewAzuriteStorer connects to the blob store emulator configured in the
// environment and ensures the container exists.
func (c *TestContext) NewAzuriteStorer(container string) *azblob.Storer {
	container = strings.ReplaceAll(strings.ToLower(container), "_", "")

	storer, err := azblob.NewDev(azblob.NewDevConfigFromEnv(), container)
	if err != nil {
		c.T.Fatalf("failed to connect to blob store emulator: %v", err)
	}
	client := storer.GetServiceClient()
	// Note: we expect a 'already exists' error here and ignore it.
	_, _ = client.CreateContainer(context.Background(), container, nil)
	return storer
}
