package service

import (
	"context"
	"io"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/pipeline"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory fakes for the store interfaces. Each fake keeps just
// enough state for the behavior under test and records the mutating
// calls it receives.

type fakeUserStore struct {
	users   map[primitive.ObjectID]*model.User
	created []*model.User
	exists  bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*model.User{}}
}

func (f *fakeUserStore) add(user *model.User) *model.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	f.created = append(f.created, user)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserStore) ExistsByUsernameOrEmail(_ context.Context, _, _ string) (bool, error) {
	return f.exists, nil
}

type fakeVideoStore struct {
	videos map[primitive.ObjectID]*model.Video
	views  int64
	count  int64
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: map[primitive.ObjectID]*model.Video{}}
}

func (f *fakeVideoStore) add() primitive.ObjectID {
	id := primitive.NewObjectID()
	f.videos[id] = &model.Video{ID: id}
	return id
}

func (f *fakeVideoStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	if video, ok := f.videos[id]; ok {
		return video, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeVideoStore) ListByChannel(_ context.Context, _ primitive.ObjectID, _ pipeline.Page) ([]model.VideoWithChannel, error) {
	return nil, nil
}

func (f *fakeVideoStore) StatsByOwner(_ context.Context, _ primitive.ObjectID) (int64, int64, error) {
	return f.views, f.count, nil
}

type fakeCommentStore struct {
	comments map[primitive.ObjectID]*model.Comment
	updated  []primitive.ObjectID
	deleted  []primitive.ObjectID
	received int64
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[primitive.ObjectID]*model.Comment{}}
}

func (f *fakeCommentStore) add(comment *model.Comment) *model.Comment {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	f.comments[comment.ID] = comment
	return comment
}

func (f *fakeCommentStore) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	if comment, ok := f.comments[id]; ok {
		return comment, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCommentStore) UpdateContent(_ context.Context, id primitive.ObjectID, content string) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	comment.Content = content
	f.updated = append(f.updated, id)
	return comment, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.comments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.comments, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCommentStore) ListByVideo(_ context.Context, videoID primitive.ObjectID, _ pipeline.Page) ([]model.CommentWithAuthor, error) {
	var out []model.CommentWithAuthor
	for _, comment := range f.comments {
		if comment.Video == videoID {
			out = append(out, model.CommentWithAuthor{ID: comment.ID, Content: comment.Content})
		}
	}
	return out, nil
}

func (f *fakeCommentStore) CountReceivedByChannel(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.received, nil
}

func (f *fakeCommentStore) DeleteByVideo(_ context.Context, videoID primitive.ObjectID) (int64, error) {
	var n int64
	for id, comment := range f.comments {
		if comment.Video == videoID {
			delete(f.comments, id)
			n++
		}
	}
	return n, nil
}

type fakeTweetStore struct {
	tweets map[primitive.ObjectID]*model.Tweet
	count  int64
}

func newFakeTweetStore() *fakeTweetStore {
	return &fakeTweetStore{tweets: map[primitive.ObjectID]*model.Tweet{}}
}

func (f *fakeTweetStore) add(tweet *model.Tweet) *model.Tweet {
	if tweet.ID.IsZero() {
		tweet.ID = primitive.NewObjectID()
	}
	f.tweets[tweet.ID] = tweet
	return tweet
}

func (f *fakeTweetStore) Create(_ context.Context, tweet *model.Tweet) error {
	tweet.ID = primitive.NewObjectID()
	f.tweets[tweet.ID] = tweet
	return nil
}

func (f *fakeTweetStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	if tweet, ok := f.tweets[id]; ok {
		return tweet, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeTweetStore) ListByOwner(_ context.Context, ownerID primitive.ObjectID, _ pipeline.Page) ([]model.Tweet, error) {
	var out []model.Tweet
	for _, tweet := range f.tweets {
		if tweet.Owner == ownerID {
			out = append(out, *tweet)
		}
	}
	return out, nil
}

func (f *fakeTweetStore) UpdateContent(_ context.Context, id primitive.ObjectID, content string) (*model.Tweet, error) {
	tweet, ok := f.tweets[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	tweet.Content = content
	return tweet, nil
}

func (f *fakeTweetStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.tweets[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.tweets, id)
	return nil
}

func (f *fakeTweetStore) CountByOwner(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.count, nil
}

type fakePlaylistStore struct {
	playlists map[primitive.ObjectID]*model.Playlist
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{playlists: map[primitive.ObjectID]*model.Playlist{}}
}

func (f *fakePlaylistStore) add(playlist *model.Playlist) *model.Playlist {
	if playlist.ID.IsZero() {
		playlist.ID = primitive.NewObjectID()
	}
	f.playlists[playlist.ID] = playlist
	return playlist
}

func (f *fakePlaylistStore) Create(_ context.Context, playlist *model.Playlist) error {
	playlist.ID = primitive.NewObjectID()
	f.playlists[playlist.ID] = playlist
	return nil
}

func (f *fakePlaylistStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	if playlist, ok := f.playlists[id]; ok {
		return playlist, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePlaylistStore) ListByOwner(_ context.Context, ownerID primitive.ObjectID, _ pipeline.Page) ([]model.Playlist, error) {
	var out []model.Playlist
	for _, playlist := range f.playlists {
		if playlist.Owner == ownerID {
			out = append(out, *playlist)
		}
	}
	return out, nil
}

func (f *fakePlaylistStore) UpdateDetails(_ context.Context, id primitive.ObjectID, name, description string) (*model.Playlist, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (f *fakePlaylistStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.playlists[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.playlists, id)
	return nil
}

func (f *fakePlaylistStore) AddVideo(_ context.Context, id, videoID primitive.ObjectID) (bool, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return false, nil
	}
	for _, v := range playlist.Videos {
		if v == videoID {
			return false, nil
		}
	}
	playlist.Videos = append(playlist.Videos, videoID)
	return true, nil
}

func (f *fakePlaylistStore) RemoveVideo(_ context.Context, id, videoID primitive.ObjectID) (bool, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return false, nil
	}
	for i, v := range playlist.Videos {
		if v == videoID {
			playlist.Videos = append(playlist.Videos[:i], playlist.Videos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePlaylistStore) GetByIDWithVideos(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return bson.M{"_id": playlist.ID, "name": playlist.Name, "videos": playlist.Videos}, nil
}

func (f *fakePlaylistStore) PullVideoFromAll(ctx context.Context, videoID primitive.ObjectID) (int64, error) {
	var n int64
	for id := range f.playlists {
		removed, _ := f.RemoveVideo(ctx, id, videoID)
		if removed {
			n++
		}
	}
	return n, nil
}

type likeKey struct {
	likedBy  primitive.ObjectID
	kind     model.TargetKind
	targetID primitive.ObjectID
}

type fakeLikeStore struct {
	likes      map[likeKey]*model.Like
	insertErr  error
	deleteMiss bool // next DeleteByTarget misses, as if another toggle raced it
	received   map[model.TargetKind]int64
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		likes:    map[likeKey]*model.Like{},
		received: map[model.TargetKind]int64{},
	}
}

func (f *fakeLikeStore) DeleteByTarget(_ context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error) {
	if f.deleteMiss {
		f.deleteMiss = false
		return nil, mongo.ErrNoDocuments
	}
	key := likeKey{likedBy, kind, targetID}
	like, ok := f.likes[key]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.likes, key)
	return like, nil
}

func (f *fakeLikeStore) Insert(_ context.Context, like *model.Like) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	like.ID = primitive.NewObjectID()
	f.likes[likeKey{like.LikedBy, like.TargetKind, like.TargetID}] = like
	return nil
}

func (f *fakeLikeStore) GetByTarget(_ context.Context, likedBy primitive.ObjectID, kind model.TargetKind, targetID primitive.ObjectID) (*model.Like, error) {
	if like, ok := f.likes[likeKey{likedBy, kind, targetID}]; ok {
		return like, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeLikeStore) ListLikedVideos(_ context.Context, _ primitive.ObjectID, _ pipeline.Page) ([]model.LikedVideo, error) {
	return nil, nil
}

func (f *fakeLikeStore) CountReceivedByChannel(_ context.Context, kind model.TargetKind, _ primitive.ObjectID) (int64, error) {
	return f.received[kind], nil
}

func (f *fakeLikeStore) DeleteAllForTarget(_ context.Context, kind model.TargetKind, targetID primitive.ObjectID) (int64, error) {
	var n int64
	for key := range f.likes {
		if key.kind == kind && key.targetID == targetID {
			delete(f.likes, key)
			n++
		}
	}
	return n, nil
}

type fakeSubscriptionStore struct {
	count int64
}

func (f *fakeSubscriptionStore) CountByChannel(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.count, nil
}

type fakeStatsCache struct {
	stats map[string]*dto.ChannelStats
	sets  int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{stats: map[string]*dto.ChannelStats{}}
}

func (f *fakeStatsCache) GetStats(_ context.Context, channelID string) (*dto.ChannelStats, bool) {
	stats, ok := f.stats[channelID]
	return stats, ok
}

func (f *fakeStatsCache) SetStats(_ context.Context, channelID string, stats *dto.ChannelStats) {
	f.stats[channelID] = stats
	f.sets++
}

type fakeUploader struct {
	uploads []string
	err     error
}

func (f *fakeUploader) UploadImage(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, objectName)
	return "https://media.test/" + objectName, nil
}

type fakeEventPublisher struct {
	events []*kafka.CleanupEvent
	err    error
}

func (f *fakeEventPublisher) PublishCleanup(_ context.Context, ev *kafka.CleanupEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}
