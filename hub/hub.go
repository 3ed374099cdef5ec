package hub

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/aokimidori/kakigori-pos/models"
	"github.com/aokimidori/kakigori-pos/services"
	"github.com/aokimidori/kakigori-pos/utils"
)

// Event types
const (
	EventOrder       = "order"       // inbound: create order / outbound: snapshot
	EventOrderUpdate = "updateOrder" // inbound: replace an order's lines
	EventOrderDelete = "deleteOrder" // inbound: remove an order
)

// Message is the outbound websocket frame.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type createPayload struct {
	OrderItems []services.OrderLineInput `json:"orderItems"`
}

type updatePayload struct {
	ID         string                    `json:"id"`
	OrderItems []services.OrderLineInput `json:"OrderItem"`
}

type deletePayload struct {
	OrderID string `json:"orderId"`
}

// Snapshot is the full state pushed to every client: all orders plus the
// recomputed summary.
type Snapshot struct {
	Orders  []models.Order `json:"orders"`
	Summary models.Summary `json:"summary"`
}

// Hub holds every connected dashboard/order client and fans the order
// snapshot out to all of them. One Hub is built in main and handed to the
// websocket handler, there is no package-level instance.
type Hub struct {
	orders  *services.OrderService
	clients map[*websocket.Conn]string // conn -> client id
	mutex   sync.Mutex
}

func NewHub(orders *services.OrderService) *Hub {
	return &Hub{
		orders:  orders,
		clients: make(map[*websocket.Conn]string),
	}
}

// Register adds a connection to the fan-out set.
func (h *Hub) Register(conn *websocket.Conn) string {
	clientID := uuid.NewString()
	h.mutex.Lock()
	h.clients[conn] = clientID
	h.mutex.Unlock()
	utils.InfoLogger.Printf("A client connected. ID: %s", clientID)
	return clientID
}

// Unregister drops a connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	delete(h.clients, conn)
	h.mutex.Unlock()
	conn.Close()
	utils.InfoLogger.Println("A client disconnected.")
}

// ServeSession runs one client session to completion: register, push a fresh
// snapshot, then handle inbound mutation events in arrival order until the
// connection drops. A failed event is logged and dropped without a broadcast,
// the session keeps running.
func (h *Hub) ServeSession(conn *websocket.Conn) {
	clientID := h.Register(conn)
	defer h.Unregister(conn)

	if err := h.BroadcastSnapshot(); err != nil {
		utils.ErrorLogger.Printf("Snapshot for client %s failed: %v", clientID, err)
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := h.dispatch(raw); err != nil {
			utils.ErrorLogger.Printf("Client %s event rejected: %v", clientID, err)
			continue
		}
		if err := h.BroadcastSnapshot(); err != nil {
			utils.ErrorLogger.Printf("Broadcast failed: %v", err)
		}
	}
}

func (h *Hub) dispatch(raw []byte) error {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	switch msg.Event {
	case EventOrder:
		var p createPayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", msg.Event, err)
		}
		_, err := h.orders.CreateOrder(p.OrderItems, true)
		return err
	case EventOrderUpdate:
		var p updatePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", msg.Event, err)
		}
		return h.orders.UpdateOrder(p.ID, p.OrderItems)
	case EventOrderDelete:
		var p deletePayload
		if err := json.Unmarshal(msg.Data, &p); err != nil {
			return fmt.Errorf("decode %s payload: %w", msg.Event, err)
		}
		return h.orders.DeleteOrder(p.OrderID)
	default:
		return fmt.Errorf("unknown event %q", msg.Event)
	}
}

// BroadcastSnapshot re-reads all orders, aggregates them and pushes the
// result to every connected client, the sender included.
func (h *Hub) BroadcastSnapshot() error {
	orders, err := h.orders.ListOrders()
	if err != nil {
		return err
	}
	h.broadcast(Message{
		Event: EventOrder,
		Data:  Snapshot{Orders: orders, Summary: services.Aggregate(orders)},
	})
	return nil
}

// broadcast sends a message to the whole connected set. Holding the mutex for
// the duration keeps writes to each connection serialized across sessions.
func (h *Hub) broadcast(msg Message) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	for conn, clientID := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending message to client %s: %v", clientID, err)
			continue
		}
	}
}
