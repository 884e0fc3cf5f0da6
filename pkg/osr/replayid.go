package osr

// readReplayID は末尾のリプレイIDを読み込みます。
// 古いリプレイはIDを32ビットで保存しているため、8バイト残っていなければ32ビットとして読みます。
func (r *reader) readReplayID() (int64, error) {
	if r.remaining() >= 8 {
		return r.int64("replay_id")
	}
	id, err := r.int32("replay_id")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}
