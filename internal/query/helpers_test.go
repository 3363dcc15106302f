package query

import (
	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

// newClient creates a client with an int id and string name/email.
// An empty email is stored as null.
func newClient(id int64, name, email string) client.Client {
	var mail value.Value = value.Null{}
	if email != "" {
		mail = value.String(email)
	}
	return client.New(value.Int(id), value.String(name), mail)
}

// sampleClients returns the three-client fixture with one shared email.
func sampleClients() List {
	return List{
		newClient(1, "John Doe", "john.doe@gmail.com"),
		newClient(2, "Jane Smith", "jane.smith@yahoo.com"),
		newClient(3, "Another Jane Smith", "jane.smith@yahoo.com"),
	}
}

// ids extracts the int ids of clients, in order.
func ids(clients []client.Client) []int64 {
	out := make([]int64, len(clients))
	for i, c := range clients {
		out[i] = int64(c.ID().(value.Int))
	}
	return out
}
