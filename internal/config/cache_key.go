package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("login:%s", userID)
}

// ClassChatChannel returns the Redis PubSub channel name for a class chat feed.
func (r *CacheKeyStruct) ClassChatChannel(classID string) string {
	return fmt.Sprintf("class:%s:chat", classID)
}

var CacheKey = NewCacheKeyStruct()
