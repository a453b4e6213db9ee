package controllers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"

	"anchored/config"
	"anchored/models"
)

/* ---------- globals ---------- */

var (
	rooms   = make(map[uint]map[*websocket.Conn]uint) // rooms[familyID] = map[conn]userID
	roomsMu sync.Mutex
)

/* ---------- helpers ---------- */

// safeWrite writes to a socket that may already be closed on the client side.
func safeWrite(conn *websocket.Conn, typ int, payload []byte) {
	if err := conn.WriteMessage(typ, payload); err != nil && !websocket.IsCloseError(err) {
		log.Printf("WS write error: %v", err)
	}
}

// saveBase64Image stores a data-URL image and returns its relative URL.
func saveBase64Image(dataURL string, userID uint) (*string, error) {
	parts := strings.SplitN(dataURL, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("bad dataURL")
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll("./public/uploads", 0755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%d_%d.jpg", userID, time.Now().UnixNano())
	path := filepath.Join("public", "uploads", name)

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return nil, err
	}
	url := "/uploads/" + name
	return &url, nil
}

/* ---------- HTTP: history ---------- */

// ChatHistory returns the family's chat log in chronological order.
func ChatHistory(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var msgs []models.ChatMessage
	if err := config.DB.
		Where("family_id = ?", user.FamilyID).
		Order("created_at").
		Find(&msgs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot load history"})
	}
	return c.JSON(msgs)
}

/* ---------- WebSocket ---------- */

type inboundChatMessage struct {
	Content string `json:"content"`
	Image   string `json:"image"` // optional data URL
}

// ChatWebSocket joins the caller to the family chat room. The token comes as
// a query parameter because browsers cannot set headers on websocket dials.
func ChatWebSocket(c *websocket.Conn) {
	tokStr := c.Query("token")
	if tokStr == "" {
		c.Close()
		return
	}

	secret := os.Getenv("JWT_SECRET")
	tok, err := jwt.Parse(tokStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		c.Close()
		return
	}
	claims := tok.Claims.(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil || user.FamilyID == 0 {
		c.Close()
		return
	}
	familyID := user.FamilyID

	// Register the connection.
	roomsMu.Lock()
	if rooms[familyID] == nil {
		rooms[familyID] = make(map[*websocket.Conn]uint)
	}
	rooms[familyID][c] = userID
	roomsMu.Unlock()

	defer func() {
		roomsMu.Lock()
		delete(rooms[familyID], c)
		if len(rooms[familyID]) == 0 {
			delete(rooms, familyID)
		}
		roomsMu.Unlock()
		c.Close()
	}()

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			return
		}

		var in inboundChatMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			continue
		}
		if in.Content == "" && in.Image == "" {
			continue
		}

		msg := models.ChatMessage{
			FamilyID: familyID,
			SenderID: userID,
			Content:  in.Content,
		}
		if in.Image != "" {
			if url, err := saveBase64Image(in.Image, userID); err == nil {
				msg.ImageURL = url
			}
		}

		if err := config.DB.Create(&msg).Error; err != nil {
			log.Printf("chat: save message failed: %v", err)
			continue
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			continue
		}

		// Broadcast to everyone in the family room.
		roomsMu.Lock()
		for conn := range rooms[familyID] {
			safeWrite(conn, websocket.TextMessage, payload)
		}
		roomsMu.Unlock()
	}
}
