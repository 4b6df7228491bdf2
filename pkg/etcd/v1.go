package etcd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	clientv3 "go.etcd.io/etcd/client/v3"
)

type V1 struct {
	conn               *clientv3.Client
	basePath           string
	appName            string
	watchPathCallbacks map[string][]func(key, value, eventType string) error
	mu                 sync.Mutex
}

func newV1Etcd(appName string) Etcd {
	if appName == "" || etcdServers == "" {
		log.Panic().Msg("app name or etcd server is not set")
	}
	servers := strings.Split(etcdServers, ",")
	conn, err := clientv3.New(clientv3.Config{
		Endpoints:           servers,
		Username:            username,
		Password:            password,
		DialTimeout:         connectionTimeout,
		DialKeepAliveTime:   connectionTimeout,
		PermitWithoutStream: true,
	})
	if err != nil {
		log.Panic().Err(err).Msg("failed to create etcd client")
	}
	v1Etcd := &V1{
		conn:               conn,
		basePath:           configPath + appName,
		appName:            appName,
		watchPathCallbacks: make(map[string][]func(key, value, eventType string) error),
	}
	if watcherEnabled {
		v1Etcd.watchPrefix(context.Background(), v1Etcd.basePath)
	}
	return v1Etcd
}

// resolve maps a path relative to the app's config root to the absolute etcd key.
func (v *V1) resolve(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return v.basePath + path
}

// GetValue fetches the value stored at the given relative path.
func (v *V1) GetValue(path string) (string, error) {
	resp, err := v.conn.Get(context.Background(), v.resolve(path))
	if err != nil {
		return "", err
	}
	if len(resp.Kvs) == 0 {
		return "", fmt.Errorf("no value found at path %s", path)
	}
	return string(resp.Kvs[0].Value), nil
}

// GetValues fetches all leaf values under the given relative path. Keys in the
// returned map are relative to the path.
func (v *V1) GetValues(path string) (map[string]string, error) {
	prefix := v.resolve(path)
	resp, err := v.conn.Get(context.Background(), prefix, clientv3.WithPrefix())
	if err != nil {
		log.Error().Err(err).Msgf("Error getting config from etcd path %s", prefix)
		return nil, err
	}
	values := make(map[string]string, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		if len(kv.Value) == 0 {
			continue
		}
		key := strings.TrimPrefix(string(kv.Key), prefix)
		key = strings.TrimPrefix(key, "/")
		values[key] = string(kv.Value)
	}
	return values, nil
}

func (v *V1) SetValue(path string, value interface{}) error {
	_, err := v.conn.Put(context.Background(), v.resolve(path), fmt.Sprintf("%v", value))
	if err != nil {
		log.Error().Err(err).Msgf("Failed to set value at node %s", path)
		return err
	}
	return nil
}

// SetValues sets the values at the given paths
func (v *V1) SetValues(paths map[string]interface{}) error {
	for path, value := range paths {
		err := v.SetValue(path, value)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateNode creates a node at the given path with the given value
func (v *V1) CreateNode(path string, value interface{}) error {
	exists, err := v.IsLeafNodeExist(path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("node already exists for %s", path)
	}
	return v.SetValue(path, value)
}

// CreateNodes creates nodes at the given paths with the given values
func (v *V1) CreateNodes(paths map[string]interface{}) error {
	for path, value := range paths {
		err := v.CreateNode(path, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *V1) DeleteNode(path string) error {
	_, err := v.conn.Delete(context.Background(), v.resolve(path))
	if err != nil {
		log.Error().Err(err).Msgf("Failed to delete node %s", path)
		return err
	}
	return nil
}

// IsNodeExist checks if any node exists under the given path
func (v *V1) IsNodeExist(path string) (bool, error) {
	resp, err := v.conn.Get(context.Background(), v.resolve(path), clientv3.WithPrefix(), clientv3.WithCountOnly())
	if err != nil {
		return false, err
	}
	return resp.Count > 0, nil
}

// IsLeafNodeExist checks if a value exists exactly at the given path
func (v *V1) IsLeafNodeExist(path string) (bool, error) {
	resp, err := v.conn.Get(context.Background(), v.resolve(path), clientv3.WithCountOnly())
	if err != nil {
		return false, err
	}
	return resp.Count > 0, nil
}

// RegisterWatchPathCallbackWithEvent registers a callback invoked for every
// change under the given relative path. The callback receives the changed key
// relative to the path, the new value (empty on delete) and the event type.
func (v *V1) RegisterWatchPathCallbackWithEvent(path string, callback func(key, value, eventType string) error) error {
	if callback == nil {
		return errors.New("callback must not be nil")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.watchPathCallbacks[path] = append(v.watchPathCallbacks[path], callback)
	return nil
}

func (v *V1) watchPrefix(ctx context.Context, prefix string) {
	watchChan := v.conn.Watch(ctx, prefix, clientv3.WithPrefix())
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Error().Msgf("panic in watch prefix: %v", r)
					}
				}()
				for watchResp := range watchChan {
					for _, event := range watchResp.Events {
						v.dispatch(event)
					}
				}
			}()

			//Avoid frequent restarts on panics
			time.Sleep(5 * time.Second)
		}
	}()
}

func (v *V1) dispatch(event *clientv3.Event) {
	absoluteKey := string(event.Kv.Key)
	relativeKey := strings.TrimPrefix(absoluteKey, v.basePath)
	value := string(event.Kv.Value)
	eventType := event.Type.String()

	v.mu.Lock()
	defer v.mu.Unlock()
	for watchPath, callbacks := range v.watchPathCallbacks {
		if !strings.HasPrefix(relativeKey, watchPath) {
			continue
		}
		key := strings.TrimPrefix(relativeKey, watchPath)
		key = strings.TrimPrefix(key, "/")
		for _, callback := range callbacks {
			if err := callback(key, value, eventType); err != nil {
				log.Error().Err(err).Msgf("watch callback failed for path %s", watchPath)
			}
		}
	}
}
