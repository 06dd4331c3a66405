package vdr

import (
	"encoding/json"
	"errors"
	"sync"

	indyvdr "github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
)

// MockVDRClient answers reads with canned replies keyed by transaction type and
// records every request it receives.
type MockVDRClient struct {
	lock sync.Mutex

	Replies    map[string]*indyvdr.ReadReply
	SubmitErr  error
	WriteReply *indyvdr.WriteReply
	WriteErr   error
	RefreshErr error
	CloseErr   error

	Reads  []map[string]interface{}
	Writes []*indyvdr.Request
}

func (r *MockVDRClient) Submit(request []byte) (*indyvdr.ReadReply, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	req := struct {
		Operation map[string]interface{} `json:"operation"`
	}{}
	if err := json.Unmarshal(request, &req); err != nil {
		return nil, err
	}

	r.Reads = append(r.Reads, req.Operation)
	if r.SubmitErr != nil {
		return nil, r.SubmitErr
	}

	typ, _ := req.Operation["type"].(string)
	return r.Replies[typ], nil
}

func (r *MockVDRClient) SubmitWrite(req *indyvdr.Request, signer indyvdr.Signer) (*indyvdr.WriteReply, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if signer == nil {
		return nil, errors.New("unsigned write")
	}

	r.Writes = append(r.Writes, req)
	if r.WriteErr != nil {
		return nil, r.WriteErr
	}

	if r.WriteReply == nil {
		return &indyvdr.WriteReply{}, nil
	}

	return r.WriteReply, nil
}

// ReadTypes lists the transaction types of the reads received so far.
func (r *MockVDRClient) ReadTypes() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	var out []string
	for _, op := range r.Reads {
		typ, _ := op["type"].(string)
		out = append(out, typ)
	}

	return out
}

func (r *MockVDRClient) RefreshPool() error {
	return r.RefreshErr
}

func (r *MockVDRClient) Close() error {
	return r.CloseErr
}
