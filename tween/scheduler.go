package tween

type entry struct {
	name     string
	tween    Tween
	reported bool
}

// A set of named tweens advanced together.
//
// Starting a tween with a name that's already in use replaces the
// previous tween (last writer wins). Completed tweens are kept in the
// scheduler and keep reporting their target value until they are
// replaced or removed, so owners can read final values on the same
// tick in which completion is reported.
//
// The zero value is ready to use.
type Scheduler struct {
	entries   []entry
	completed []string
}

// Starts (or restarts) the named tween.
func (self *Scheduler) Start(name string, from, to, duration float64, ease Ease) {
	tween := New(from, to, duration, ease)
	if index := self.indexOf(name); index >= 0 {
		self.entries[index] = entry{name: name, tween: tween}
		return
	}
	self.entries = append(self.entries, entry{name: name, tween: tween})
}

// Advances all tweens by dt seconds and returns the names of the
// tweens that completed during this call, in start order. Each tween
// is reported exactly once, including tweens started with a zero
// duration.
//
// The returned slice is reused by the next call to Advance.
func (self *Scheduler) Advance(dt float64) []string {
	self.completed = self.completed[:0]
	for i := range self.entries {
		current := &self.entries[i]
		if current.reported {
			continue
		}
		if current.tween.Advance(dt) {
			current.reported = true
			self.completed = append(self.completed, current.name)
		}
	}
	return self.completed
}

// Returns the current value of the named tween and whether
// the tween exists.
func (self *Scheduler) Value(name string) (float64, bool) {
	index := self.indexOf(name)
	if index < 0 {
		return 0, false
	}
	return self.entries[index].tween.Value(), true
}

// Returns whether the named tween exists and is still running.
func (self *Scheduler) Active(name string) bool {
	index := self.indexOf(name)
	return index >= 0 && !self.entries[index].tween.Done()
}

// Returns whether any tween is still running.
func (self *Scheduler) AnyActive() bool {
	for i := range self.entries {
		if !self.entries[i].tween.Done() {
			return true
		}
	}
	return false
}

// Removes the named tween. Removing an unknown name is a no-op.
func (self *Scheduler) Remove(name string) {
	index := self.indexOf(name)
	if index < 0 {
		return
	}
	self.entries = append(self.entries[:index], self.entries[index+1:]...)
}

// Returns the number of tweens in the scheduler, running or done.
func (self *Scheduler) Len() int {
	return len(self.entries)
}

func (self *Scheduler) indexOf(name string) int {
	for i := range self.entries {
		if self.entries[i].name == name {
			return i
		}
	}
	return -1
}
