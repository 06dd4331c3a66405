package notifier

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/scoir/anoncreds-registry/pkg/amqp"
)

type Server struct {
	store    WebhookStore
	listener amqp.Listener
	client   *http.Client
	errors   chan error
}

type provider interface {
	GetWebhookStore() WebhookStore
	GetAMQPListener(queue string) amqp.Listener
}

func New(prov provider) (*Server, error) {
	srv := &Server{
		store:    prov.GetWebhookStore(),
		listener: prov.GetAMQPListener(QueueName),
		client:   &http.Client{Timeout: 30 * time.Second},
	}

	if srv.listener == nil {
		return nil, errors.New("an AMQP listener is required for the notifier")
	}

	return srv, nil
}

func (r *Server) Start() error {
	return r.listenAndServe()
}

func (r *Server) listenAndServe() error {
	msgs, err := r.listener.Listen()
	if err != nil {
		return errors.Wrap(err, "unable to consume")
	}

	for d := range msgs {
		note := &Notification{}
		err := json.Unmarshal(d.Body, note)
		if err != nil {
			r.Error(errors.Wrap(err, "bad notification message"))
			continue
		}

		hooks, err := r.store.ListWebhooks(note.Topic)
		if err != nil {
			r.Error(errors.Wrapf(err, "no webhooks for topic %s", note.Topic))
			continue
		}

		event := &EventMessage{
			Topic:     note.Topic,
			Event:     note.Event,
			Timestamp: time.Now().Unix(),
			EventData: note.EventData,
		}
		data, _ := json.Marshal(event)
		for _, hook := range hooks {
			r.post(hook, data)
		}
	}

	return errors.New("notification messages closed")
}

func (r *Server) post(hook *Webhook, data []byte) {
	resp, err := r.client.Post(hook.URL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		r.Error(errors.Wrapf(err, "unable to post event to hook %s", hook.URL))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		b, _ := ioutil.ReadAll(resp.Body)
		r.Error(errors.Errorf("error response from hook. code: (%d): %s\n", resp.StatusCode, string(b)))
	}
}

func (r *Server) Error(err error) {
	if r.errors == nil {
		log.Println(err.Error())
		return
	}

	r.errors <- err
}

func (r *Server) Errors() (chan error, error) {
	if r.errors != nil {
		return nil, errors.New("error listener already registered")
	}

	r.errors = make(chan error, 1)
	return r.errors, nil
}
