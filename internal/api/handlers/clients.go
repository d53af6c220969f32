package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"parking-backend/internal/repository"
	"parking-backend/internal/services"
	"parking-backend/pkg/utils"
)

type ClientHandler struct {
	clientService *services.ClientService
	validator     *validator.Validate
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		validator:     validator.New(),
	}
}

// GetClients retrieves all permanent clients
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.GetAllClients()
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// CreateClient registers a new permanent client
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClient applies a partial update to an existing client
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID := c.Param("id")

	var req services.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	client, err := h.clientService.UpdateClient(clientID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Permanent client not found")
			return
		}
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client by id. Unknown ids still report success.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientService.DeleteClient(c.Param("id")); err != nil {
		utils.InternalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
