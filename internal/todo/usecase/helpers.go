package usecase

func (uc *implUseCase) indexOf(id string) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
