// File: caredesk/handlers/client.go
package handlers

import (
	"net/http"

	"caredesk/services/client"

	"github.com/gin-gonic/gin"
)

// ClientHandler encapsulates client record endpoints. Responses are already
// filtered for the caller's role by the client service.
type ClientHandler struct {
	Service client.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

// ListClientsHandler returns the client roster.
func (ch *ClientHandler) ListClientsHandler(c *gin.Context) {
	records, err := ch.Service.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetClientHandler returns one client's personal record.
func (ch *ClientHandler) GetClientHandler(c *gin.Context) {
	record, err := ch.Service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetClientBillingHandler returns one client's billing summary.
func (ch *ClientHandler) GetClientBillingHandler(c *gin.Context) {
	record, err := ch.Service.GetClientBilling(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
